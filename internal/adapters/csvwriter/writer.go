package csvwriter

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/christophbittig/network-subnet-assignment/internal/domain"
	"github.com/christophbittig/network-subnet-assignment/internal/domain/subnetplan"
	"github.com/christophbittig/network-subnet-assignment/internal/ports"
)

// Проверка реализации интерфейса PlanWriter на этапе компиляции.
var _ ports.PlanWriter = (*Writer)(nil)

var header = []string{"network", "cidr", "subnetmask", "name", "vid", "description"}

// Writer сохраняет план назначений в CSV-файл.
type Writer struct {
	path string
}

func New(path string) *Writer {
	return &Writer{path: path}
}

func (w *Writer) WritePlan(_ context.Context, plan []subnetplan.Assignment, meta domain.SiteMeta) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, a := range plan {
		row := []string{
			a.Block.String(),
			strconv.Itoa(a.Block.Bits),
			a.Block.Netmask(),
			a.Request.Name,
			strconv.Itoa(a.Request.VID),
			meta.Description(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for %q: %w", a.Request.Name, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv file: %w", err)
	}
	return nil
}
