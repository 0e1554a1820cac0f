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

package environment

// DefaultSensitiveEnvList returns a fresh copy of the variable names and glob
// patterns whose values are treated as secrets. Patterns are upper case.
func DefaultSensitiveEnvList() map[string]struct{} {
	return map[string]struct{}{
		// generic
		"*PASSWORD*":       {},
		"*PASSWD*":         {},
		"*_PWD":            {},
		"*SECRET*":         {},
		"*TOKEN*":          {},
		"*API_KEY*":        {},
		"*APIKEY*":         {},
		"*ACCESS_KEY*":     {},
		"*PRIVATE_KEY*":    {},
		"*CREDENTIAL*":     {},
		"*_AUTH":           {},
		"*_DSN":            {},
		"*JWT*":            {},
		"*SESSION_KEY*":    {},
		"*SIGNING_KEY*":    {},
		"*ENCRYPTION_KEY*": {},
		"*WEBHOOK_URL*":    {},

		// connection strings
		"DATABASE_URL": {},
		"MONGODB_URI":  {},
		"MONGO_URL":    {},
		"REDIS_URL":    {},
		"AMQP_URL":     {},
		"RABBITMQ_URL": {},

		// cloud and CI
		"AWS_ACCESS_KEY_ID":              {},
		"AWS_SECRET_ACCESS_KEY":          {},
		"AWS_SESSION_TOKEN":              {},
		"AZURE_CLIENT_SECRET":            {},
		"GOOGLE_APPLICATION_CREDENTIALS": {},
		"GITHUB_TOKEN":                   {},
		"GITLAB_TOKEN":                   {},
		"NPM_TOKEN":                      {},
		"SLACK_WEBHOOK_URL":              {},
		"STRIPE_SECRET_KEY":              {},
		"SENDGRID_API_KEY":               {},
		"TWILIO_AUTH_TOKEN":              {},
		"VAULT_TOKEN":                    {},
		"DOCKER_PASSWORD":                {},
	}
}
