package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	intconfig "truckqr/internal/config"
	"truckqr/internal/domain"
	"truckqr/internal/domain/models"
	router "truckqr/internal/http"
	"truckqr/internal/services"
	"truckqr/internal/utils"
)

var (
	env intconfig.Env
	loc *time.Location

	form     models.DeliveryForm
	formFile string
	outPNG   string
	outPDF   string
)

var rootCmd = &cobra.Command{
	Use:   "truckqr",
	Short: "Truck gate QR generator",
	Long: `truckqr validates truck delivery details and encodes them as a QR code
holding a JSON payload for the integration platform.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		env, err = intconfig.LoadEnv()
		if err != nil {
			return err
		}
		if _, err := utils.InitLogger(env.LogLevel, env.LogDevelopment); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		loc, err = utils.LoadLocation(env.Timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone %q: %w", env.Timezone, err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = utils.L().Sync()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a QR code from command line fields",
	Example: `  truckqr generate --plate ABC-123 --driver "John Doe" --customer CUST001 \
    --date 2026-10-17 --hour 07 --minute 30 --meridiem PM --items "ITEM001:10, ITEM002:5"`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&formFile, "form", "", "YAML file with the form fields (flags override it)")
	f.StringVar(&form.Plate, "plate", "", "plate number")
	f.StringVar(&form.DriverName, "driver", "", "driver name")
	f.StringVar(&form.CustomerID, "customer", "", "customer ID")
	f.StringVar(&form.Date, "date", "", "gate date (YYYY-MM-DD)")
	f.StringVar(&form.Hour, "hour", "", "hour 01-12")
	f.StringVar(&form.Minute, "minute", "", "minute 00-59")
	f.StringVar(&form.Meridiem, "meridiem", "", "AM or PM")
	f.StringVar(&form.TruckType, "truck-type", "", "truck type (Type A..Type E)")
	f.StringVar(&form.Company, "company", "", "company name")
	f.StringVar(&form.DeliveryOrderRef, "delivery-ref", "", "delivery order reference")
	f.StringVar(&form.Items, "items", "", "items as SKU:QTY, SKU:QTY")
	f.StringVarP(&outPNG, "out", "o", "", "PNG output path (default: derived from plate and time)")
	f.StringVar(&outPDF, "pdf", "", "also write a printable gate pass PDF to this path")

	rootCmd.AddCommand(serveCmd, generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	logger := utils.L()

	r := router.NewRouter(env, loc, nil)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", env.AppAddr), zap.String("timezone", loc.String()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	in, err := resolveForm(cmd)
	if err != nil {
		return err
	}

	svc := services.GeneratorService{RequestID: "cli", Location: loc}
	res, err := svc.Generate(in)
	if err != nil {
		return reportGenerateError(cmd, err)
	}

	path := outPNG
	if path == "" {
		path = res.Filename
	}
	if err := os.WriteFile(path, res.PNG, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if outPDF != "" {
		pdfBytes, _, err := svc.GenerateGatePass(in)
		if err != nil {
			return reportGenerateError(cmd, err)
		}
		if err := os.WriteFile(outPDF, pdfBytes, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPDF, err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Payload)
	fmt.Fprintf(out, "\nQR version %d written to %s\n", res.Version, filepath.Clean(path))
	fmt.Fprintf(out, "Total items: %d  Total quantity: %d\n", res.Summary.TotalItems, res.Summary.TotalQuantity)
	return nil
}

// resolveForm loads --form if given, then applies any flags that were set.
func resolveForm(cmd *cobra.Command) (models.DeliveryForm, error) {
	var base models.DeliveryForm
	if formFile != "" {
		raw, err := os.ReadFile(formFile)
		if err != nil {
			return base, fmt.Errorf("read form %s: %w", formFile, err)
		}
		if err := yaml.Unmarshal(raw, &base); err != nil {
			return base, fmt.Errorf("parse form %s: %w", formFile, err)
		}
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("plate", &base.Plate, form.Plate)
	override("driver", &base.DriverName, form.DriverName)
	override("customer", &base.CustomerID, form.CustomerID)
	override("date", &base.Date, form.Date)
	override("hour", &base.Hour, form.Hour)
	override("minute", &base.Minute, form.Minute)
	override("meridiem", &base.Meridiem, form.Meridiem)
	override("truck-type", &base.TruckType, form.TruckType)
	override("company", &base.Company, form.Company)
	override("delivery-ref", &base.DeliveryOrderRef, form.DeliveryOrderRef)
	override("items", &base.Items, form.Items)
	return base, nil
}

func reportGenerateError(cmd *cobra.Command, err error) error {
	if msgs := domain.ValidationMessages(err); len(msgs) > 0 {
		for _, m := range msgs {
			fmt.Fprintln(cmd.ErrOrStderr(), "error:", m)
		}
		return fmt.Errorf("%d validation error(s)", len(msgs))
	}
	if domain.IsPayloadTooLarge(err) {
		return err
	}
	utils.L().Error("unexpected error", zap.Error(err))
	return errors.New("unexpected error")
}
