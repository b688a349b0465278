package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jhoicas/notaria-textos/internal/application/documento"
	"github.com/jhoicas/notaria-textos/internal/application/dto"
	"github.com/jhoicas/notaria-textos/internal/domain"
	"github.com/jhoicas/notaria-textos/internal/domain/notarial"
	"github.com/jhoicas/notaria-textos/internal/domain/repository"
	"github.com/jhoicas/notaria-textos/internal/infrastructure/fixture"
	"github.com/jhoicas/notaria-textos/internal/infrastructure/metrics"
	"github.com/jhoicas/notaria-textos/internal/infrastructure/postgres"
	"github.com/jhoicas/notaria-textos/pkg/config"
	"github.com/jhoicas/notaria-textos/pkg/logger"
)

// flags compartidas por los subcomandos.
type flags struct {
	archivo   string
	protocolo string
	html      bool
	json      bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "notarial",
		Short: "Genera textos de escrituras notariales",
		Long: `Genera el encabezado o la comparecencia de un protocolo.

Los datos se leen de PostgreSQL (variables DB_* o DATABASE_URL) o, con --archivo,
de un YAML con uno o más protocolos.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&f.archivo, "archivo", "a", "", "YAML con protocolos; sin él se usa la base de datos")
	root.PersistentFlags().StringVarP(&f.protocolo, "protocolo", "p", "", "id del protocolo (opcional si el YAML tiene uno solo)")
	root.PersistentFlags().BoolVar(&f.json, "json", false, "salida JSON con request_id, advertencias y error")

	encabezadoCmd := &cobra.Command{
		Use:   "encabezado",
		Short: "Encabezado tabular: otorgantes, ubicación y cuantía",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ejecutar(cmd, f, func(ctx context.Context, uc *documento.UseCase, id string) (any, string, []string, error) {
				out, err := uc.GenerarEncabezado(ctx, id)
				if err != nil {
					return nil, "", nil, err
				}
				if !out.Success {
					return out, "", out.Warnings, errors.New(*out.Error)
				}
				return out, *out.Encabezado, out.Warnings, nil
			})
		},
	}

	comparecenciaCmd := &cobra.Command{
		Use:   "comparecencia",
		Short: "Cláusula de comparecencia de los otorgantes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ejecutar(cmd, f, func(ctx context.Context, uc *documento.UseCase, id string) (any, string, []string, error) {
				out, err := uc.GenerarComparecencia(ctx, id, f.html)
				if err != nil {
					return nil, "", nil, err
				}
				if !out.Success {
					return out, "", out.Warnings, errors.New(*out.Error)
				}
				texto := *out.Comparecencia
				if f.html && out.ComparecenciaHTML != nil {
					texto = *out.ComparecenciaHTML
				}
				return out, texto, out.Warnings, nil
			})
		},
	}
	comparecenciaCmd.Flags().BoolVar(&f.html, "html", false, "imprimir la versión con <strong>")

	root.AddCommand(encabezadoCmd, comparecenciaCmd)
	return root
}

type generar func(ctx context.Context, uc *documento.UseCase, id string) (resp any, texto string, warnings []string, err error)

func ejecutar(cmd *cobra.Command, f *flags, gen generar) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Out: cmd.ErrOrStderr()})

	repo, id, cerrar, err := abrirRepositorio(ctx, cfg, f)
	if err != nil {
		return err
	}
	defer cerrar()

	uc := documento.NewUseCase(repo, notarial.NewGenerator(generatorOptions(cfg)), log, metrics.New(prometheus.NewRegistry()))
	resp, texto, warnings, genErr := gen(ctx, uc, id)
	if resp == nil {
		if f.json {
			if err := escribirJSON(cmd.OutOrStdout(), errorResponse(genErr)); err != nil {
				return err
			}
		}
		return genErr
	}

	if f.json {
		if err := escribirJSON(cmd.OutOrStdout(), resp); err != nil {
			return err
		}
		return genErr
	}
	if genErr != nil {
		return genErr
	}
	fmt.Fprintln(cmd.OutOrStdout(), texto)
	for _, w := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "advertencia:", w)
	}
	return nil
}

// generatorOptions traduce la configuración a las opciones del generador.
func generatorOptions(cfg *config.Config) notarial.Options {
	return notarial.Options{
		NotariaTexto:        cfg.Notaria.Texto,
		Ciudad:              cfg.Notaria.Ciudad,
		CiudadDomicilio:     cfg.Notaria.CiudadDomicilio,
		CantonPorDefecto:    cfg.Notaria.CantonDefecto,
		ProvinciaPorDefecto: cfg.Notaria.ProvinciaDefecto,
		ActosExcluidos:      cfg.Documento.ActosSinComparecencia,
		AnchoNombre:         cfg.Documento.AnchoNombre,
		AnchoCedula:         cfg.Documento.AnchoCedula,
		AnchoCalidad:        cfg.Documento.AnchoCalidad,
	}
}

// abrirRepositorio elige la fuente de datos y resuelve el id del protocolo.
func abrirRepositorio(ctx context.Context, cfg *config.Config, f *flags) (repository.ProtocoloRepository, string, func(), error) {
	if f.archivo != "" {
		repo, err := fixture.Load(f.archivo)
		if err != nil {
			return nil, "", nil, err
		}
		id := f.protocolo
		if id == "" {
			ids := repo.IDs()
			if len(ids) != 1 {
				return nil, "", nil, fmt.Errorf("el archivo tiene %d protocolos; indique --protocolo", len(ids))
			}
			id = ids[0]
		}
		return repo, id, func() {}, nil
	}

	if f.protocolo == "" {
		return nil, "", nil, errors.New("indique --protocolo")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, "", nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return postgres.NewProtocoloRepository(pool), f.protocolo, pool.Close, nil
}

func errorResponse(err error) dto.ErrorResponse {
	code := "INTERNAL"
	if errors.Is(err, domain.ErrNotFound) {
		code = "NOT_FOUND"
	}
	return dto.ErrorResponse{Code: code, Message: err.Error()}
}

func escribirJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
