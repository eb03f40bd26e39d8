// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves pipeline settings from the config file,
// environment, and secrets directory.
// Implements: prd001-config (R1-R3);
//
//	docs/ARCHITECTURE § Configuration.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/trend-report/pkg/types"
)

// Configuration defaults (R2.1-R2.3). The API key has no default: a run
// without one fails before any network call.
const (
	DefaultNumTrends = 1
	DefaultDaysAgo   = 90
	DefaultNLPID     = "nlp/f/topic/1874"

	DefaultTimeout    = 60 * time.Second
	DefaultPageDelay  = 1 * time.Second
	DefaultTrendDelay = 2 * time.Second
	DefaultUserAgent  = "trend-report/0.1"
	DefaultOutput     = "article_details.xlsx"
)

// SecretAPIKey is the secrets-directory filename holding the Feedly token.
const SecretAPIKey = "feedly-api-key"

// Load resolves the pipeline configuration from v, falling back to secrets
// for the API key. The key is the only required setting (R1.2): when it is
// absent everywhere, Load returns an error naming it, so a misconfigured
// run fails before any network use. A negative num_trends is treated as 0.
func Load(v *viper.Viper, secrets map[string]string) (types.PipelineConfig, error) {
	v.SetDefault("feedly.num_trends", DefaultNumTrends)
	v.SetDefault("feedly.days_ago", DefaultDaysAgo)
	v.SetDefault("feedly.nlp_id", DefaultNLPID)

	apiKey := v.GetString("feedly.api_key")
	if apiKey == "" {
		apiKey = secrets[SecretAPIKey]
	}
	if apiKey == "" {
		return types.PipelineConfig{}, fmt.Errorf("feedly.api_key not set: add it to the config file or .secrets/%s", SecretAPIKey)
	}

	numTrends := v.GetInt("feedly.num_trends")
	if numTrends < 0 {
		numTrends = 0
	}

	return types.PipelineConfig{
		Feedly: types.FeedlyConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   DefaultTimeout,
				UserAgent: DefaultUserAgent,
			},
			APIKey:    apiKey,
			NLPID:     v.GetString("feedly.nlp_id"),
			PageDelay: DefaultPageDelay,
		},
		Report: types.ReportConfig{
			NumTrends:  numTrends,
			DaysAgo:    v.GetInt("feedly.days_ago"),
			TrendDelay: DefaultTrendDelay,
			OutputPath: DefaultOutput,
		},
	}, nil
}
