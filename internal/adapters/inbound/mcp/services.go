package mcp

import (
	"github.com/sirupsen/logrus"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/config"
	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/filestore"
	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/gitinfo"
	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/history"
	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/manifest"
	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/metadata"
	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/regression"
	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/scanner"
	"github.com/hermeslabs/hermes-rebrand/internal/application"
)

// newServices creates the standard set of outbound adapters and services.
func newServices(log logrus.FieldLogger) (*application.RebrandService, *application.ScopeService) {
	sc := scanner.New()
	store := filestore.New()
	git := gitinfo.New()
	return application.NewRebrandService(sc, store, config.New(), metadata.New(), git, regression.New(), history.New(), log),
		application.NewScopeService(sc, sc, store, manifest.New(), git, log)
}
