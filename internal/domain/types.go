package domain

// AllocationRequest — запрос на выделение подсети заданного размера.
// VID — сквозной тег (VLAN id); планировщиком не интерпретируется
// и переносится в результат без изменений.
type AllocationRequest struct {
	Name      string
	PrefixLen int
	VID       int
}

// SiteMeta — метаданные площадки для текстового описания назначений.
type SiteMeta struct {
	Company      string
	LocationCode string
}

// Description возвращает описание площадки в виде "<company> - <location>".
func (m SiteMeta) Description() string {
	return m.Company + " - " + m.LocationCode
}
