package subnetplan

import (
	"errors"
	"fmt"
	"sort"

	"github.com/christophbittig/network-subnet-assignment/internal/domain"
)

var (
	// ErrInvalidPrefixLength — длина префикса запроса вне диапазона [0, Width].
	ErrInvalidPrefixLength = errors.New("invalid prefix length")
	// ErrOversizedRequest — запрошен блок крупнее базовой сети.
	ErrOversizedRequest = errors.New("requested block is larger than the base network")
	// ErrInsufficientSpace — адресов базовой сети не хватает на все запросы.
	ErrInsufficientSpace = errors.New("insufficient space in the base network")
)

// Assignment — подсеть, назначенная конкретному запросу.
type Assignment struct {
	Request domain.AllocationRequest
	Block   Block
}

// Allocate разбивает базовую сеть на непересекающиеся подсети, по одной на запрос.
//
// Раскладка: запросы обходятся от крупных блоков к мелким (stable sort, при
// равной длине префикса сохраняется исходный порядок), курсор перед каждым
// назначением выравнивается вверх по границе очередного блока и затем
// сдвигается на его размер. Обход от крупных к мелким гарантирует, что каждый
// блок встаёт на границу собственного префикса без возвратов и дыр, пока
// суммарный размер запросов не превышает базовую сеть.
//
// Результат возвращается в исходном порядке запросов. Функция чистая: курсор
// живёт только внутри вызова, между вызовами ничего не сохраняется.
func Allocate(base Block, reqs []domain.AllocationRequest) ([]Assignment, error) {
	for _, r := range reqs {
		if r.PrefixLen < 0 || r.PrefixLen > Width {
			return nil, fmt.Errorf("%w: %q: /%d", ErrInvalidPrefixLength, r.Name, r.PrefixLen)
		}
		if r.PrefixLen < base.Bits {
			return nil, fmt.Errorf("%w: %q: /%d does not fit in %s", ErrOversizedRequest, r.Name, r.PrefixLen, base)
		}
	}

	// Сортируем перестановку индексов, а не сами запросы:
	// на выходе порядок назначений должен совпадать с порядком запросов.
	order := make([]int, len(reqs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return reqs[order[i]].PrefixLen < reqs[order[j]].PrefixLen
	})

	var (
		assignments = make([]Assignment, len(reqs))
		cursor      = uint64(base.Addr)
		end         = uint64(base.Addr) + base.Size()
	)
	for _, idx := range order {
		r := reqs[idx]
		size := uint64(1) << (Width - r.PrefixLen)
		// Выравнивание по границе блока; no-op, если курсор уже выровнен.
		cursor = (cursor + size - 1) &^ (size - 1)
		// Проверка по реальному курсору: ловит и перебор по сумме размеров,
		// и потерю адресов на выравнивании.
		if cursor+size > end {
			return nil, fmt.Errorf("%w: %q: /%d does not fit in %s", ErrInsufficientSpace, r.Name, r.PrefixLen, base)
		}
		assignments[idx] = Assignment{
			Request: r,
			Block:   Block{Addr: uint32(cursor), Bits: r.PrefixLen},
		}
		cursor += size
	}

	return assignments, nil
}
