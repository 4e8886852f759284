package cli

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

func newRebrandService(log logrus.FieldLogger) *application.RebrandService {
	return application.NewRebrandService(
		scanner.New(),
		filestore.New(),
		config.New(),
		metadata.New(),
		gitinfo.New(),
		regression.New(),
		history.New(),
		log,
	)
}

func newScopeService(log logrus.FieldLogger) *application.ScopeService {
	sc := scanner.New()
	return application.NewScopeService(sc, sc, filestore.New(), manifest.New(), gitinfo.New(), log)
}
