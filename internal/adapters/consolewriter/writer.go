package consolewriter

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/christophbittig/network-subnet-assignment/internal/domain"
	"github.com/christophbittig/network-subnet-assignment/internal/domain/subnetplan"
	"github.com/christophbittig/network-subnet-assignment/internal/ports"
)

// Проверка реализации интерфейса PlanWriter на этапе компиляции.
var _ ports.PlanWriter = (*Writer)(nil)

// Writer печатает план назначений построчно в текстовый поток.
type Writer struct {
	out io.Writer
}

func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Describe возвращает строку одного назначения:
// "<cidr> <name> (<company> - <location>)".
func Describe(a subnetplan.Assignment, meta domain.SiteMeta) string {
	return fmt.Sprintf("%s %s (%s)", a.Block, a.Request.Name, meta.Description())
}

func (w *Writer) WritePlan(_ context.Context, plan []subnetplan.Assignment, meta domain.SiteMeta) error {
	// color сам отключает escape-коды, если приёмник не терминал
	green := color.New(color.FgGreen)
	for _, a := range plan {
		if _, err := green.Fprintln(w.out, Describe(a, meta)); err != nil {
			return fmt.Errorf("write assignment line: %w", err)
		}
	}
	return nil
}
