package tui

import (
	"github.com/MKhiriev/go-wine-cellar/models"
	"github.com/google/uuid"
)

type pageLoadedMsg struct {
	page models.PageResult[models.Wine]
	err  error
}

type wineDeletedMsg struct {
	id  uuid.UUID
	err error
}

type versionLoadedMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}
