package domain

// SearchPropertiesFilters — фильтры поиска по каталогу.
// Name и Address — поиск подстроки без учета регистра,
// границы цены — включительные и независимо опциональные.
type SearchPropertiesFilters struct {
	Name     string
	Address  string
	PriceMin *float64
	PriceMax *float64
}

// PropertyCard — объект каталога вместе с разрешенной обложкой.
// CoverURL == nil, когда у объекта нет ни одного изображения.
type PropertyCard struct {
	Property
	CoverURL *string
}

// PropertySearchResult — страница выдачи с общим числом совпадений
// и фактически примененными параметрами пагинации.
type PropertySearchResult struct {
	Items      []PropertyCard
	TotalCount int64
	Page       int
	Size       int
}
