package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/Abraxas-365/headhunter/pkg/config"
	"github.com/Abraxas-365/headhunter/pkg/iam/auth"
	"github.com/Abraxas-365/headhunter/recruitment/candidate"
	"github.com/spf13/cobra"
)

// signCmd prints the api-signature header value for a candidate body,
// for manual testing with curl.
func signCmd(configPath *string) *cobra.Command {
	var (
		file   string
		method string
		path   string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Print the api-signature for a candidate JSON body",
		Example: `  headhunter sign --file bruce.json
  echo '{"full_name":"Bruce Wayne",...}' | headhunter sign`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			signature, err := signBody(in, cfg.Auth.Signature.SecretKey, method, path)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signature)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON body to sign (- for stdin)")
	cmd.Flags().StringVar(&method, "method", http.MethodPost, "HTTP method of the request")
	cmd.Flags().StringVar(&path, "path", "/api/candidate", "Request path")
	return cmd
}

func signBody(r io.Reader, secret, method, path string) (string, error) {
	var req candidate.CreateCandidateRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	fields, err := req.SignedFields()
	if err != nil {
		return "", err
	}
	return auth.NewSignatureVerifier(secret).Sign(method, path, fields...), nil
}
