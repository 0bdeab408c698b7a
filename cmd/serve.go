package cmd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	certmanagerv1 "github.com/cert-manager/cert-manager/pkg/apis/certmanager/v1"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apiserver/pkg/server/healthz"
	"k8s.io/client-go/discovery"
	"k8s.io/client-go/kubernetes"
	typedcorev1 "k8s.io/client-go/kubernetes/typed/core/v1"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/suffiks/ingress-extension/controllers/ingress"
	"github.com/suffiks/ingress-extension/controllers/reporter"
	"github.com/suffiks/ingress-extension/extension"
)

const (
	listenAddress          = "listen-address"
	metricsBindAddress     = "metrics-bind-address"
	healthProbeBindAddress = "health-probe-bind-address"
	clusterIssuer          = "cluster-issuer"
	kubeAPITimeout         = "kube-api-timeout"
	emitEvents             = "emit-events"
	logLevel               = "log-level"
	logFormat              = "log-format"
	debug                  = "debug"
)

const eventSourceComponent = "suffiks-ingress-extension"

type serveOptions struct {
	ListenAddress          string        `validate:"hostname_port"`
	HealthProbeBindAddress string        `validate:"hostname_port"`
	MetricsBindAddress     string        `validate:"hostname_port"`
	ClusterIssuer          string        `validate:"required"`
	KubeAPITimeout         time.Duration `validate:"gt=0"`
	EmitEvents             bool
	LogLevel               string `validate:"oneof=debug info warn error"`
	LogFormat              string `validate:"oneof=json console"`
	Debug                  bool
}

func (o *serveOptions) validate() error {
	return validator.New().Struct(o)
}

type serveCmd struct {
	serveOptions

	cobra.Command
}

// ServeCommand creates command to run the extension gRPC server
func ServeCommand() (*cobra.Command, error) {
	cmd := serveCmd{
		Command: cobra.Command{
			Use:   "serve",
			Short: "runs the extension gRPC server",
		}}
	cmd.RunE = cmd.exec
	if err := cmd.setupFlags(); err != nil {
		return nil, err
	}
	return &cmd.Command, nil
}

func (s *serveCmd) setupFlags() error {
	flags := s.PersistentFlags()
	flags.StringVar(&s.ListenAddress, listenAddress, ":8080", "The address the extension gRPC server binds to.")
	flags.StringVar(&s.HealthProbeBindAddress, healthProbeBindAddress, ":8081", "The address the probe endpoint binds to.")
	flags.StringVar(&s.MetricsBindAddress, metricsBindAddress, ":9090", "The address the metric endpoint binds to.")
	flags.StringVar(&s.ClusterIssuer, clusterIssuer, ingress.DefaultClusterIssuer,
		"cert-manager ClusterIssuer referenced by managed ingresses")
	flags.DurationVar(&s.KubeAPITimeout, kubeAPITimeout, 30*time.Second, "timeout for Kubernetes API requests")
	flags.BoolVar(&s.EmitEvents, emitEvents, false, "record Kubernetes events on the owning resource")
	flags.StringVar(&s.LogLevel, logLevel, "info", "log level, one of debug, info, warn, error")
	flags.StringVar(&s.LogFormat, logFormat, defaultLogFormat(), "log format, json or console")
	flags.BoolVar(&s.Debug, debug, false, "enable debug logging and ingress diffs")
	if err := flags.MarkHidden(debug); err != nil {
		return err
	}
	return viperWalk(flags)
}

func (s *serveCmd) exec(*cobra.Command, []string) error {
	if err := s.validate(); err != nil {
		return fmt.Errorf("options: %w", err)
	}
	logger, err := setupLogger(s.LogLevel, s.LogFormat, s.Debug)
	if err != nil {
		return err
	}
	ctx := log.IntoContext(ctrl.SetupSignalHandler(), logger)

	cfg, err := ctrl.GetConfig()
	if err != nil {
		return fmt.Errorf("kube config: %w", err)
	}
	cfg.Timeout = s.KubeAPITimeout

	scheme, err := getScheme()
	if err != nil {
		return fmt.Errorf("get scheme: %w", err)
	}
	c, err := client.New(cfg, client.Options{Scheme: scheme})
	if err != nil {
		return fmt.Errorf("kube client: %w", err)
	}
	cs, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return fmt.Errorf("kube clientset: %w", err)
	}

	if err := waitForAPI(ctx, cs.Discovery()); err != nil {
		return fmt.Errorf("waiting for kubernetes api: %w", err)
	}
	checkClusterIssuer(ctx, c, s.ClusterIssuer)

	opts, stop := s.reconcilerOptions(cs, scheme)
	defer stop()

	lis, err := net.Listen("tcp", s.ListenAddress)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.ListenAddress, err)
	}
	srv := extension.NewServer(extension.NewHandler(ingress.NewReconciler(c, opts...)), logger.WithName("grpc"))

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return runHealthz(ctx, s.HealthProbeBindAddress, healthz.NamedCheck("kube-api", apiCheck(cs.Discovery())))
	})
	eg.Go(func() error { return runMetrics(ctx, s.MetricsBindAddress) })
	eg.Go(func() error {
		logger.Info("serving", "address", lis.Addr().String())
		return extension.Serve(ctx, srv, lis)
	})

	return eg.Wait()
}

func (s *serveCmd) reconcilerOptions(cs kubernetes.Interface, scheme *runtime.Scheme) ([]ingress.Option, func()) {
	reporters := []reporter.IngressStatusReporter{
		&reporter.IngressLogReporter{V: 1, Name: "reconcile"},
	}
	stop := func() {}
	if s.EmitEvents {
		broadcaster := record.NewBroadcaster()
		broadcaster.StartRecordingToSink(&typedcorev1.EventSinkImpl{Interface: cs.CoreV1().Events("")})
		reporters = append(reporters, &reporter.IngressEventReporter{
			EventRecorder: broadcaster.NewRecorder(scheme, corev1.EventSource{Component: eventSourceComponent}),
		})
		stop = broadcaster.Shutdown
	}

	opts := []ingress.Option{
		ingress.WithClusterIssuer(s.ClusterIssuer),
		ingress.WithIngressStatusReporter(reporters...),
	}
	if s.Debug {
		opts = append(opts, ingress.WithDebugDumpDiff())
	}
	return opts, stop
}

func waitForAPI(ctx context.Context, dc discovery.ServerVersionInterface) error {
	bo := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	return backoff.RetryNotify(func() error {
		v, err := dc.ServerVersion()
		if err != nil {
			return err
		}
		log.FromContext(ctx).Info("connected to kubernetes api", "version", v.GitVersion)
		return nil
	}, bo, func(err error, next time.Duration) {
		log.FromContext(ctx).Info("kubernetes api not ready", "error", err.Error(), "retry-in", next)
	})
}

func apiCheck(dc discovery.ServerVersionInterface) func(*http.Request) error {
	return func(*http.Request) error {
		_, err := dc.ServerVersion()
		return err
	}
}

// checkClusterIssuer only warns, the issuer may be created after the extension starts
func checkClusterIssuer(ctx context.Context, c client.Reader, name string) {
	logger := log.FromContext(ctx).WithValues("cluster-issuer", name)

	var issuer certmanagerv1.ClusterIssuer
	err := c.Get(ctx, types.NamespacedName{Name: name}, &issuer)
	switch {
	case apierrors.IsNotFound(err):
		logger.Info("cluster issuer not found, certificates will not be issued until it exists")
	case err != nil:
		logger.Error(err, "checking cluster issuer")
	default:
		logger.V(1).Info("cluster issuer found")
	}
}
