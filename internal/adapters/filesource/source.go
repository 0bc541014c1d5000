package filesource

import (
	"context"
	"errors"
	"fmt"
	"os"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/christophbittig/network-subnet-assignment/internal/domain"
	"github.com/christophbittig/network-subnet-assignment/internal/ports"
)

var (
	// ErrFileNotFound — файл со списком сетей не найден.
	ErrFileNotFound = errors.New("networks file not found")
	// ErrEmptyNetworks — в файле нет ни одной записи под ключом networks.
	ErrEmptyNetworks = errors.New("networks list is empty")
	// ErrMissingName — у записи отсутствует или пустое поле name.
	ErrMissingName = errors.New("network record has no name")
	// ErrMissingCIDR — у записи отсутствует поле cidr.
	ErrMissingCIDR = errors.New("network record has no cidr")
)

// Проверка реализации интерфейса RequestSource на этапе компиляции.
var _ ports.RequestSource = (*NetworksFile)(nil)

// record — сырая запись файла до валидации. Произвольная структура из
// JSON/YAML приводится к строгому domain.AllocationRequest только здесь,
// на границе: до планировщика невалидная запись не доходит.
type record struct {
	Name string `mapstructure:"name"`
	CIDR *int   `mapstructure:"cidr"`
	VID  int    `mapstructure:"vid"`
}

// NetworksFile читает запросы на подсети из JSON- или YAML-файла
// с записями {name, cidr, vid} под ключом networks.
type NetworksFile struct {
	path string
}

func New(path string) *NetworksFile {
	return &NetworksFile{path: path}
}

func (f *NetworksFile) LoadRequests(_ context.Context) ([]domain.AllocationRequest, error) {
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, f.path)
	}

	v := viper.New()
	v.SetConfigFile(f.path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read networks file: %w", err)
	}

	var records []record
	decoderCfg := &mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		Result:           &records,
		WeaklyTypedInput: true,
	}
	dec, err := mapstructure.NewDecoder(decoderCfg)
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(v.Get("networks")); err != nil {
		return nil, fmt.Errorf("decode networks file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyNetworks, f.path)
	}

	reqs := make([]domain.AllocationRequest, 0, len(records))
	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("%w: record %d", ErrMissingName, i)
		}
		if rec.CIDR == nil {
			return nil, fmt.Errorf("%w: record %q", ErrMissingCIDR, rec.Name)
		}
		reqs = append(reqs, domain.AllocationRequest{
			Name:      rec.Name,
			PrefixLen: *rec.CIDR,
			VID:       rec.VID,
		})
	}
	return reqs, nil
}
