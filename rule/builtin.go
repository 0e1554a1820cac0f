// Copyright 2026 The Envguard Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rule

// Ids of the built-in rules.
const (
	IDPasswordHardcoded      = "password-hardcoded"
	IDAPIKeyExposed          = "api-key-exposed"
	IDDatabaseURLCredentials = "database-url-credentials"
	IDDebugEnabled           = "debug-enabled"
	IDPrivateKeyPlaintext    = "private-key-plaintext"
	IDWeakPassword           = "weak-password"
	IDLocalhostURL           = "localhost-url"
)

// BuiltinRules returns a fresh copy of the built-in rules, all enabled.
func BuiltinRules() []Rule {
	return []Rule{
		{
			ID:           IDPasswordHardcoded,
			Name:         "Hardcoded Password",
			Description:  "Password stored in plain text",
			Severity:     SeverityCritical,
			Pattern:      `(?i)(password|passwd|pwd)[a-z0-9_]*\s*=\s*\S+`,
			KeyPattern:   `(?i)(password|passwd|pwd)`,
			ValuePattern: `^[^$]`,
			Suggestion:   "Load the password from a secrets manager or inject it at deploy time",
			Enabled:      true,
		},
		{
			ID:           IDAPIKeyExposed,
			Name:         "Exposed API Key",
			Description:  "API key or access token stored in plain text",
			Severity:     SeverityCritical,
			Pattern:      `(?i)(api[_-]?key|api[_-]?secret|secret[_-]?key|access[_-]?key|access[_-]?token|auth[_-]?token|token)[a-z0-9_]*\s*=`,
			KeyPattern:   `(?i)(key|token|secret)`,
			ValuePattern: `^["']?[A-Za-z0-9_\-]{20,}["']?$`,
			Suggestion:   "Rotate the key and reference it from a secrets manager",
			Enabled:      true,
		},
		{
			ID:           IDDatabaseURLCredentials,
			Name:         "Database URL with Credentials",
			Description:  "Connection string embeds a username and password",
			Severity:     SeverityCritical,
			Pattern:      `(?i)(postgres|postgresql|mysql|mariadb|mongodb|mongodb\+srv|redis|rediss|amqp|amqps|mssql|sqlserver|oracle)://[^\s:/@]+:[^\s@]+@`,
			ValuePattern: `://[^\s:/@]+:[^\s$@][^\s@]*@`,
			Suggestion:   "Pass database credentials separately from the connection URL",
			Enabled:      true,
		},
		{
			ID:           IDDebugEnabled,
			Name:         "Debug Mode Enabled",
			Description:  "Debug mode should not be enabled outside development",
			Severity:     SeverityWarning,
			Pattern:      `(?i)debug[a-z0-9_]*\s*=\s*["']?(true|1|yes|on)["']?\s*$`,
			KeyPattern:   `(?i)debug`,
			ValuePattern: `(?i)^["']?(true|1|yes|on)["']?$`,
			Suggestion:   "Set debug to false for production deployments",
			Enabled:      true,
		},
		{
			ID:           IDPrivateKeyPlaintext,
			Name:         "Plaintext Private Key",
			Description:  "Private key material stored in the environment file",
			Severity:     SeverityCritical,
			Pattern:      `(-----BEGIN ([A-Z0-9]+ )*PRIVATE KEY-----|(?i:private[_-]?key)[A-Za-z0-9_]*\s*=\s*\S+)`,
			ValuePattern: `^["']?(-----BEGIN|[A-Za-z0-9+/=]{40,})`,
			Suggestion:   "Store the key in a file with restricted permissions or a key management service",
			Enabled:      true,
		},
		{
			ID:           IDWeakPassword,
			Name:         "Weak Password",
			Description:  "Common weak or default password",
			Severity:     SeverityCritical,
			Pattern:      `(?i)(password|passwd|pwd|pass)[a-z0-9_]*\s*=\s*\S+`,
			KeyPattern:   `(?i)(password|passwd|pwd|pass)`,
			ValuePattern: `(?i)^["']?(password|password1|passw0rd|123456|12345678|123456789|1234|qwerty|admin|administrator|root|toor|letmein|changeme|changeit|default|secret|test|guest|welcome|abc123)["']?$`,
			Suggestion:   "Replace the default password with a strong generated one",
			Enabled:      true,
		},
		{
			ID:           IDLocalhostURL,
			Name:         "Localhost URL",
			Description:  "URL points at a local address",
			Severity:     SeverityInfo,
			Pattern:      `(?i)(localhost|127\.0\.0\.1|0\.0\.0\.0|\[::1\])`,
			ValuePattern: `(?i)^["']?[a-z][a-z0-9+.\-]*://([^\s/@]*@)?(localhost|127\.0\.0\.1|0\.0\.0\.0|\[::1\])([:/"']|$)`,
			Suggestion:   "Make sure this URL is overridden outside local development",
			Enabled:      true,
		},
	}
}
