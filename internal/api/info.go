// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"net/http"

	"github.com/taibuivan/heroes/internal/platform/config"
	"github.com/taibuivan/heroes/internal/platform/constants"
	"github.com/taibuivan/heroes/internal/platform/respond"
)

// InfoResponse describes the running service.
type InfoResponse struct {
	AppName       string `json:"app_name"`
	Version       string `json:"version"`
	Environment   string `json:"environment"`
	Debug         bool   `json:"debug"`
	StorageDriver string `json:"storage_driver"`
	DatabaseHost  string `json:"database_host"`
	// DatabaseURL has its password masked.
	DatabaseURL string `json:"database_url"`
}

// NewInfoHandler serves GET / from the loaded configuration.
func NewInfoHandler(cfg *config.Config) http.HandlerFunc {
	info := InfoResponse{
		AppName:       cfg.AppName,
		Version:       constants.AppVersion,
		Environment:   cfg.Environment,
		Debug:         cfg.Debug,
		StorageDriver: cfg.StorageDriver,
		DatabaseHost:  cfg.DatabaseHost(),
		DatabaseURL:   cfg.RedactedDatabaseURL(),
	}

	return func(writer http.ResponseWriter, _ *http.Request) {
		respond.OK(writer, info)
	}
}
