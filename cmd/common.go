// Package cmd implements top level commands
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	certmanagerv1 "github.com/cert-manager/cert-manager/pkg/apis/certmanager/v1"
	"github.com/go-logr/logr"
	"github.com/hashicorp/go-multierror"
	"github.com/iancoleman/strcase"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apiserver/pkg/server/healthz"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/klog/v2"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	ctrlmetrics "sigs.k8s.io/controller-runtime/pkg/metrics"

	icsv1 "github.com/suffiks/ingress-extension/apis/ingress/v1"
)

const envPrefix = "SUFFIKS_INGRESS_"

const (
	logFormatJSON    = "json"
	logFormatConsole = "console"
)

func envName(name string) string {
	return envPrefix + strcase.ToScreamingSnake(name)
}

func defaultLogFormat() string {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return logFormatConsole
	}
	return logFormatJSON
}

func setupLogger(level, format string, debug bool) (logr.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return logr.Logger{}, fmt.Errorf("log level: %w", err)
	}
	if debug {
		lvl = zapcore.DebugLevel
	}
	opts := zap.Options{
		Development:     debug,
		Level:           lvl,
		StacktraceLevel: zapcore.DPanicLevel,
	}
	encoder := zap.JSONEncoder()
	if format == logFormatConsole {
		encoder = zap.ConsoleEncoder()
	}

	logger := zap.New(zap.UseFlagOptions(&opts), encoder)
	ctrl.SetLogger(logger)
	klog.SetLogger(logger.WithName("client-go"))
	return logger, nil
}

func getScheme() (*runtime.Scheme, error) {
	scheme := runtime.NewScheme()
	for _, apply := range []struct {
		name string
		fn   func(*runtime.Scheme) error
	}{
		{"core", clientgoscheme.AddToScheme},
		{"xingress", icsv1.AddToScheme},
		{"cert-manager", certmanagerv1.AddToScheme},
	} {
		if err := apply.fn(scheme); err != nil {
			return nil, fmt.Errorf("%s: %w", apply.name, err)
		}
	}
	return scheme, nil
}

func viperWalk(flags *pflag.FlagSet) error {
	v := viper.New()
	var errs *multierror.Error
	flags.VisitAll(func(f *pflag.Flag) {
		if err := v.BindEnv(f.Name, envName(f.Name)); err != nil {
			errs = multierror.Append(errs, err)
			return
		}

		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			errs = multierror.Append(errs, flags.Set(f.Name, fmt.Sprintf("%v", val)))
		}
	})
	return errs.ErrorOrNil()
}

func runHealthz(ctx context.Context, addr string, readyChecks ...healthz.HealthChecker) error {
	mux := http.NewServeMux()
	healthz.InstallHandler(mux)
	healthz.InstallReadyzHandler(mux, readyChecks...)
	return serveHTTP(ctx, addr, mux)
}

func runMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(ctrlmetrics.Registry, promhttp.HandlerOpts{}))
	return serveHTTP(ctx, addr, mux)
}

func serveHTTP(ctx context.Context, addr string, handler http.Handler) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: time.Millisecond * 100,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
