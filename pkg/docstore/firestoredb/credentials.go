package firestoredb

import (
	"encoding/json"
	"errors"
	"strings"
)

// ServiceAccount holds the parts of a Google service-account key that vary per project.
// The fixed endpoints are filled in by JSON.
type ServiceAccount struct {
	ProjectID         string
	PrivateKeyID      string
	PrivateKey        string
	ClientEmail       string
	ClientID          string
	ClientX509CertURL string
}

func (sa ServiceAccount) Empty() bool {
	return sa.PrivateKey == "" && sa.ClientEmail == ""
}

// JSON renders the key file google.golang.org/api/option expects. Escaped newlines in
// PrivateKey, as found in single-line environment values, are expanded.
func (sa ServiceAccount) JSON() ([]byte, error) {
	if sa.PrivateKey == "" {
		return nil, errors.New("firebase private key is required")
	}
	if sa.ClientEmail == "" {
		return nil, errors.New("firebase client email is required")
	}

	return json.Marshal(map[string]string{
		"type":                        "service_account",
		"project_id":                  sa.ProjectID,
		"private_key_id":              sa.PrivateKeyID,
		"private_key":                 strings.ReplaceAll(sa.PrivateKey, `\n`, "\n"),
		"client_email":                sa.ClientEmail,
		"client_id":                   sa.ClientID,
		"auth_uri":                    "https://accounts.google.com/o/oauth2/auth",
		"token_uri":                   "https://oauth2.googleapis.com/token",
		"auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
		"client_x509_cert_url":        sa.ClientX509CertURL,
		"universe_domain":             "googleapis.com",
	})
}
