package masking

import "regexp"

// Pattern is one compiled redaction rule applied to tool output before it
// reaches the model, the conversation store, or a dashboard socket.
type Pattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns covers the credential shapes agents routinely surface when
// inspecting infrastructure: kubeconfigs, CI logs, env dumps, PEM blocks.
// Structural maskers run first, so these are the general sweep.
func builtinPatterns() []*Pattern {
	return []*Pattern{
		{
			Name:        "certificate",
			Regex:       regexp.MustCompile(`(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`),
			Replacement: `__MASKED_CERTIFICATE__`,
		},
		{
			Name:        "certificate_authority_data",
			Regex:       regexp.MustCompile(`(?i)certificate-authority-data:\s*([A-Za-z0-9+/]{20,}={0,2})`),
			Replacement: `certificate-authority-data: __MASKED_CA_CERTIFICATE__`,
		},
		{
			Name:        "api_key",
			Regex:       regexp.MustCompile(`(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`),
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
		},
		{
			Name:        "token",
			Regex:       regexp.MustCompile(`(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`),
			Replacement: `"token": "__MASKED_TOKEN__"`,
		},
		{
			Name:        "password",
			Regex:       regexp.MustCompile(`(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`),
			Replacement: `"password": "__MASKED_PASSWORD__"`,
		},
		{
			Name:        "secret_key",
			Regex:       regexp.MustCompile(`(?i)(?:secret[_-]?key|private[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`),
			Replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
		},
		{
			Name:        "aws_access_key",
			Regex:       regexp.MustCompile(`\bAKIA[A-Z0-9]{16}\b`),
			Replacement: `__MASKED_AWS_KEY__`,
		},
		{
			Name:        "ssh_key",
			Regex:       regexp.MustCompile(`ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`),
			Replacement: `__MASKED_SSH_KEY__`,
		},
		{
			// user:password@ in connection URLs (postgres://, amqp://, ...).
			Name:        "url_credentials",
			Regex:       regexp.MustCompile(`://([^:/\s]+):([^@/\s]+)@`),
			Replacement: `://$1:__MASKED_PASSWORD__@`,
		},
	}
}
