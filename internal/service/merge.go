package service

import "github.com/MKhiriev/go-wine-cellar/models"

// mergeWine copies every present field of update into target. Absent fields
// and the ID are left as they are; values are taken verbatim.
func mergeWine(target *models.Wine, update models.WineUpdate) {
	setIfPresent(&target.Name, update.Name)
	setIfPresent(&target.Year, update.Year)
	setIfPresent(&target.Color, update.Color)
	setIfPresent(&target.State, update.State)
	setIfPresent(&target.Winery, update.Winery)
	setIfPresent(&target.Kind, update.Kind)
	setIfPresent(&target.Sugar, update.Sugar)
	setIfPresent(&target.Alcohol, update.Alcohol)
	setIfPresent(&target.Country, update.Country)
	setIfPresent(&target.Region, update.Region)
	setIfPresent(&target.Score, update.Score)
	setIfPresent(&target.Description, update.Description)
	setIfPresent(&target.Picture, update.Picture)
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
