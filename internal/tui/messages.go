package tui

import (
	"github.com/artarona/WORK-PAGINAWEB-IA/models"
)

type bannerLoadedMsg struct {
	status models.StatusResponse
	stats  models.CatalogStats
	err    error
}

type replyMsg struct {
	resp models.ChatResponse
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
