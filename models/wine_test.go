package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestCreateWineRequest_ToWine(t *testing.T) {
	req := CreateWineRequest{
		Name:        ptr("Chablis"),
		Year:        ptr(2019),
		Color:       ptr("white"),
		State:       ptr("dry"),
		Winery:      ptr("Domaine Laroche"),
		Kind:        ptr("chardonnay"),
		Sugar:       ptr(2.0),
		Alcohol:     ptr(12.5),
		Country:     ptr("France"),
		Region:      ptr("Burgundy"),
		Score:       ptr(91.0),
		Description: ptr("mineral"),
		Picture:     ptr("chablis.png"),
	}

	got := req.ToWine()

	assert.Equal(t, uuid.Nil, got.ID)
	assert.Equal(t, Wine{
		Name: "Chablis", Year: 2019, Color: "white", State: "dry",
		Winery: "Domaine Laroche", Kind: "chardonnay", Sugar: 2.0, Alcohol: 12.5,
		Country: "France", Region: "Burgundy", Score: 91.0,
		Description: "mineral", Picture: "chablis.png",
	}, got)
}

func TestCreateWineRequest_ToWine_NilFieldsBecomeZero(t *testing.T) {
	got := CreateWineRequest{Name: ptr("Rioja")}.ToWine()

	assert.Equal(t, Wine{Name: "Rioja"}, got)
}

func TestWineUpdate_IsEmpty(t *testing.T) {
	assert.True(t, WineUpdate{}.IsEmpty())
	assert.False(t, WineUpdate{Score: ptr(0.0)}.IsEmpty())
}

func TestNewBuildInfo(t *testing.T) {
	info := NewBuildInfo("", "2026-10-18", "")

	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "2026-10-18", info.Date)
	assert.Equal(t, "N/A", info.Commit)
	assert.Contains(t, info.String(), "Build date: 2026-10-18")
}

func TestCreateWineRequest_MissingField(t *testing.T) {
	assert.Equal(t, "name", CreateWineRequest{}.MissingField())

	req := CreateWineRequest{
		Name: ptr("Barolo"), Year: ptr(2016), Color: ptr("red"), State: ptr("still"),
		Winery: ptr("Vietti"), Kind: ptr("nebbiolo"), Sugar: ptr(0.0), Alcohol: ptr(14.0),
		Country: ptr("Italy"), Region: ptr("Piedmont"), Score: ptr(94.0),
		Description: ptr("tar and roses"),
	}
	assert.Equal(t, "picture", req.MissingField())

	req.Picture = ptr("")
	assert.Empty(t, req.MissingField())
}
