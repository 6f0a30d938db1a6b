package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/vfg2006/production-report-api/pkg/log"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Gera o relatório em PDF ou XLSX",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&opts.Format, "format", "pdf", "Formato do arquivo: pdf ou xlsx")
	generateCmd.Flags().StringVar(&opts.Out, "out", "", "Arquivo ou diretório de saída (padrão: nome gerado no diretório atual)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	format, ok := domain.ParseDocumentFormat(opts.Format)
	if !ok {
		return errors.Errorf("formato não suportado: %q", opts.Format)
	}

	ctx := cmd.Context()

	env, err := openEnvironment(ctx)
	if err != nil {
		return err
	}
	defer env.Close()

	req, err := parseRequest(opts, env.cfg.App.Location)
	if err != nil {
		return err
	}

	owner, err := env.owner(opts.OwnerID)
	if err != nil {
		return err
	}

	document, err := env.reporter.DownloadReport(ctx, owner, format, req.view, req.filters)
	if err != nil {
		return err
	}

	target, err := outputPath(opts.Out, document.FileName)
	if err != nil {
		return err
	}

	if err := os.WriteFile(target, document.Content, 0o644); err != nil {
		return errors.Wrapf(err, "erro ao gravar %s", target)
	}

	log.L.WithFields(log.Fields{
		"report_owner_id": owner.ID,
		"report_file":     target,
		"report_bytes":    len(document.Content),
	}).Info("Relatório gerado")

	return nil
}

// outputPath resolve o destino: vazio usa o nome sugerido, diretório recebe o nome sugerido
func outputPath(out, suggested string) (string, error) {
	if out == "" {
		return suggested, nil
	}

	info, err := os.Stat(out)
	if err == nil && info.IsDir() {
		return filepath.Join(out, suggested), nil
	}
	if err != nil && !os.IsNotExist(err) {
		return "", errors.Wrapf(err, "erro ao verificar %s", out)
	}

	return out, nil
}
