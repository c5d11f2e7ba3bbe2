package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/credseal/bootstrap"
	"github.com/kbukum/credseal/config"
	"github.com/kbukum/credseal/credentials"
	"github.com/kbukum/credseal/encryption"
	"github.com/kbukum/credseal/errors"
	"github.com/kbukum/credseal/logger"
	"github.com/kbukum/credseal/observability"
	"github.com/kbukum/credseal/resilience"
	"github.com/kbukum/credseal/util"
	"github.com/kbukum/credseal/validation"
)

// rootOptions holds persistent flags and the command's I/O.
type rootOptions struct {
	configFile string
	envFile    string
	key        string
	algorithm  string
	logLevel   string
	output     string

	stdin io.Reader
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	o := &rootOptions{stdin: stdin}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Seal passwords and credential payloads with a shared secret.",
		Long: `credseal encrypts passwords the way the web client does before sending
them to /login and /register: AES-256-CBC with an OpenSSL "Salted__" header,
base64 encoded. The output can be decrypted with

  openssl enc -d -aes-256-cbc -md md5 -a -A -pass pass:$ENCRYPTION_SECRET_KEY

The secret key is read from config.yml (encryption.secret_key), the
ENCRYPTION_SECRET_KEY environment variable, a .env file, or --key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configFile, "config", "", "path to config.yml")
	flags.StringVar(&o.envFile, "env-file", "", "path to a .env file")
	flags.StringVar(&o.key, "key", "", "secret key (overrides configuration)")
	flags.StringVar(&o.algorithm, "algorithm", "", "aes-256-cbc-salted, aes-256-gcm or chacha20-poly1305")
	flags.StringVar(&o.logLevel, "log-level", "", "debug, info, warn, error or disabled")
	flags.StringVar(&o.output, "output", outputText, "error format: text or json")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.InvalidInput("flags", err.Error())
	})
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return validation.New().OneOf("output", o.output, []string{outputText, outputJSON}).Validate()
	}

	cmd.AddCommand(
		newEncryptCmd(o),
		newDecryptCmd(o),
		newLoginCmd(o),
		newRegisterCmd(o),
		newUsersCmd(),
		newVersionCmd(),
	)
	return cmd
}

// loadConfig resolves configuration files and environment, then applies
// flag overrides.
func (o *rootOptions) loadConfig() (*AppConfig, error) {
	var opts []config.LoaderOption
	if o.configFile != "" {
		opts = append(opts, config.WithConfigFile(o.configFile))
	}
	if o.envFile != "" {
		opts = append(opts, config.WithEnvFile(o.envFile))
	}

	algorithms := make([]string, len(encryption.Algorithms))
	for i, alg := range encryption.Algorithms {
		algorithms[i] = string(alg)
	}
	if err := validation.New().OneOf("algorithm", o.algorithm, algorithms).Validate(); err != nil {
		return nil, err
	}

	cfg := &AppConfig{}
	if err := config.LoadConfig(appName, cfg, opts...); err != nil {
		return nil, errors.Misconfigured("config", err)
	}

	cfg.Encryption.SecretKey = util.Coalesce(util.SanitizeEnvValue(o.key), cfg.Encryption.SecretKey)
	cfg.Encryption.Algorithm = util.Coalesce(o.algorithm, cfg.Encryption.Algorithm)
	cfg.Logging.Level = util.Coalesce(o.logLevel, cfg.Logging.Level)
	return cfg, nil
}

// run loads configuration, builds a Sealer and runs task inside the
// bootstrap lifecycle. Logs go to the command's stderr.
func (o *rootOptions) run(cmd *cobra.Command, task func(ctx context.Context, s *credentials.Sealer) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	cfg.ApplyDefaults()

	log := logger.NewWithWriter(cmd.ErrOrStderr(), &cfg.Logging, cfg.Name)
	app, err := bootstrap.NewApp(cfg, bootstrap.WithLogger(log))
	if err != nil {
		return err
	}

	var sealer *credentials.Sealer
	app.OnConfigure(func(ctx context.Context, a *bootstrap.App[*AppConfig]) error {
		shutdown, err := observability.Setup(ctx, a.Cfg.Observability, a.Name, a.Version, a.Cfg.Environment)
		if err != nil {
			return err
		}
		a.OnStop(bootstrap.Hook(shutdown))

		metrics, err := observability.NewMetrics(observability.Meter(a.Name))
		if err != nil {
			return err
		}
		sealer, err = credentials.NewSealerFromConfig(a.Cfg.Encryption,
			credentials.WithMetrics(metrics),
			credentials.WithLogger(a.Logger),
			credentials.WithRetry(resilience.DefaultPolicy()),
		)
		return err
	})

	return app.RunTask(cmd.Context(), func(ctx context.Context) error {
		return task(ctx, sealer)
	})
}

// readInput returns args[0], or standard input when fromStdin is set.
// A single trailing line ending is removed from standard input.
func (o *rootOptions) readInput(args []string, fromStdin bool, what string) (string, error) {
	err := validation.New().
		Custom(!fromStdin || len(args) == 0, what, "pass it as an argument or with --stdin, not both").
		Validate()
	if err != nil {
		return "", err
	}
	if !fromStdin && len(args) == 0 {
		return "", errors.MissingField(what)
	}
	if fromStdin {
		return o.readStdin()
	}
	return args[0], nil
}

func (o *rootOptions) readStdin() (string, error) {
	data, err := io.ReadAll(o.stdin)
	if err != nil {
		return "", err
	}
	return util.TrimLineEnding(string(data)), nil
}

// passwordFlags is shared by the login and register commands.
type passwordFlags struct {
	password  string
	fromStdin bool
}

func (p *passwordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.password, "password", "", "plaintext password (prefer --stdin)")
	cmd.Flags().BoolVar(&p.fromStdin, "stdin", false, "read the password from standard input")
	cmd.MarkFlagsMutuallyExclusive("password", "stdin")
}

func (p *passwordFlags) resolve(cmd *cobra.Command, o *rootOptions) (string, error) {
	if !p.fromStdin && !cmd.Flags().Changed("password") {
		return "", errors.MissingField("password")
	}
	if p.fromStdin {
		return o.readStdin()
	}
	return p.password, nil
}
