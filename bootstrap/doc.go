// Package bootstrap runs a credseal command with a uniform lifecycle.
//
// NewApp applies configuration defaults, validates, and installs the
// logger. RunTask then runs the configure callbacks, executes the task
// with a context canceled on SIGINT/SIGTERM, and finally runs the stop
// hooks within the graceful timeout.
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.OnConfigure(func(ctx context.Context, a *bootstrap.App[*AppConfig]) error {
//	    shutdown, err := observability.Setup(ctx, a.Cfg.Observability, a.Name, a.Version, a.Cfg.Environment)
//	    a.OnStop(bootstrap.Hook(shutdown))
//	    return err
//	})
//	err = app.RunTask(ctx, func(ctx context.Context) error { ... })
package bootstrap
