package router

import (
	appuser "github.com/abdrasaq14/payever-test/internal/application"
	"github.com/abdrasaq14/payever-test/internal/container"
	pginfra "github.com/abdrasaq14/payever-test/internal/infrastructure/postgres"
	handlers "github.com/abdrasaq14/payever-test/internal/interface/http"
	"github.com/abdrasaq14/payever-test/internal/router/modules"
)

func buildUserModule() *modules.UserModule {
	cfg := container.GetConfig()
	repo := pginfra.NewUserRepository(container.GetPGPool())

	// keep nil concrete clients out of the service's interface fields
	var m appuser.Mailer
	if mg := container.GetMailgun(); mg != nil {
		m = mg
	}
	var pub appuser.EventPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}

	service := appuser.NewService(
		repo,
		m,
		pub,
		container.GetRedis(),
		container.GetLogger(),
		cfg.AppName,
		cfg.MailSendEnabled,
	)

	avatars := appuser.NewAvatarStore(
		cfg.AvatarDir,
		repo,
		container.GetRedis(),
		container.GetLogger(),
	)

	handler := handlers.NewUserHandler(service, avatars, container.GetLogger())
	return modules.NewUserModule(handler)
}

// InitModules wires all feature modules into the router registry. Called once
// during startup after the container singletons are set.
func InitModules(r *Registry) {
	r.Add(buildUserModule())
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
