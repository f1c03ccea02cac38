package goSuite

import (
	"time"

	"github.com/MrEthical07/goSuite/wire"
)

// Result is the bare response envelope returned by operations that
// carry no payload beyond the success/failure discriminator
// ([Broker.ActivateSuite], [Broker.SetCorpIPWhitelist]).
type Result = wire.Result

// SuiteToken is the cached suite access token. It is owned exclusively
// by the broker; callers receive read-only copies. The zero value is
// the already-expired sentinel, so a fresh broker always refreshes on
// first use.
type SuiteToken struct {
	Value     string
	ExpiresAt time.Time
}

// Valid reports whether the token may authorize a call at instant now.
// The comparison is strict expiry-after-now; no skew buffer is applied.
func (t SuiteToken) Valid(now time.Time) bool {
	return t.Value != "" && t.ExpiresAt.After(now)
}

// CorpInfo identifies an authorized organization.
type CorpInfo struct {
	CorpID   string `json:"corpid"`
	CorpName string `json:"corp_name"`
}

// Agent is the per-application metadata nested inside an authorization
// scope.
type Agent struct {
	AgentID       int64  `json:"agentid"`
	Name          string `json:"name"`
	SquareLogoURL string `json:"square_logo_url"`
	RoundLogoURL  string `json:"round_logo_url"`
}

// AuthScope lists the agents an organization granted to the suite.
type AuthScope struct {
	Agents []Agent `json:"agent"`
}

// PermanentCodeInfo is returned by [Broker.GetPermanentCode]. The
// permanent code is the long-lived identifier that establishes ongoing
// authorization for one organization; the bundled access token is a
// first corp token issued alongside it.
type PermanentCodeInfo struct {
	wire.Result
	AccessToken   string    `json:"access_token"`
	ExpiresIn     int64     `json:"expires_in"`
	PermanentCode string    `json:"permanent_code"`
	AuthCorpInfo  CorpInfo  `json:"auth_corp_info"`
	AuthInfo      AuthScope `json:"auth_info"`
}

// CorpToken is returned by [Broker.GetCorpToken].
type CorpToken struct {
	wire.Result
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthInfo is returned by [Broker.GetAuthInfo].
type AuthInfo struct {
	wire.Result
	AuthCorpInfo CorpInfo  `json:"auth_corp_info"`
	AuthInfo     AuthScope `json:"auth_info"`
}

// AgentInfo is returned by [Broker.GetAgent].
type AgentInfo struct {
	wire.Result
	AgentID       int64  `json:"agentid"`
	Name          string `json:"name"`
	SquareLogoURL string `json:"square_logo_url"`
	RoundLogoURL  string `json:"round_logo_url"`
	Description   string `json:"description"`
}

// PreAuthCode is returned by [Broker.GetPreAuthCode]. It seeds the
// install redirect that ends in a tmp_auth_code callback.
type PreAuthCode struct {
	wire.Result
	PreAuthCode string `json:"pre_auth_code"`
	ExpiresIn   int64  `json:"expires_in"`
}
