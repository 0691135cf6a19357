package mongodb_adapter

import (
	"regexp"

	"catalog-service/internal/core/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildSearchFilter собирает bson-фильтр по условиям поиска.
// Пустой фильтр означает "вся коллекция".
func buildSearchFilter(f domain.SearchPropertiesFilters) bson.M {
	filter := bson.M{}

	// Поиск подстроки без учета регистра. Ввод экранируем:
	// пользовательская строка — не регулярное выражение.
	if f.Name != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Name), Options: "i"}
	}
	if f.Address != "" {
		filter["address"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Address), Options: "i"}
	}

	// Границы цены включительные и независимо опциональные
	price := bson.M{}
	if f.PriceMin != nil {
		price["$gte"] = *f.PriceMin
	}
	if f.PriceMax != nil {
		price["$lte"] = *f.PriceMax
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	return filter
}
