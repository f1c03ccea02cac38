package goSuite

import (
	"context"
	"net/url"
	"time"

	"github.com/MrEthical07/goSuite/wire"
)

// authorizedPost obtains a valid token, issues exactly one POST with
// the token as the query credential, and unwraps the envelope into out.
// No retries, no pagination, no batching.
func (b *Broker) authorizedPost(ctx context.Context, operation, path, corpID string, body, out any) error {
	if b == nil || b.remote == nil {
		return ErrBrokerNotReady
	}

	token, err := b.Token(ctx)
	if err != nil {
		return err
	}

	query := url.Values{wire.CredentialParam: []string{token.Value}}

	start := time.Now()
	err = b.remote.Post(ctx, path, query, body, out)
	if b.metrics != nil {
		b.metrics.Observe(MetricRemoteLatency, time.Since(start))
	}
	if err != nil {
		b.metricInc(MetricRemoteCallFailure)
		b.emitAudit(ctx, auditEventRemoteCallFailure, false, operation, corpID, err, nil)
		return err
	}

	b.metricInc(MetricRemoteCallSuccess)
	return nil
}

type permanentCodeRequest struct {
	TmpAuthCode string `json:"tmp_auth_code"`
}

type preAuthCodeRequest struct {
	SuiteKey string `json:"suite_key"`
}

type authInfoRequest struct {
	SuiteKey      string `json:"suite_key"`
	AuthCorpID    string `json:"auth_corpid"`
	PermanentCode string `json:"permanent_code"`
}

type activateSuiteRequest struct {
	SuiteKey      string `json:"suite_key"`
	AuthCorpID    string `json:"auth_corpid"`
	PermanentCode string `json:"permanent_code"`
}

// GetPermanentCode exchanges the temporary auth code delivered by the
// install callback for the organization's permanent code.
func (b *Broker) GetPermanentCode(ctx context.Context, tmpAuthCode string) (*PermanentCodeInfo, error) {
	var out PermanentCodeInfo
	err := b.authorizedPost(ctx, "get_permanent_code", "/get_permanent_code", "", permanentCodeRequest{
		TmpAuthCode: tmpAuthCode,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPreAuthCode fetches a fresh pre-auth code for starting an install
// redirect.
func (b *Broker) GetPreAuthCode(ctx context.Context) (*PreAuthCode, error) {
	var out PreAuthCode
	err := b.authorizedPost(ctx, "get_pre_auth_code", "/get_pre_auth_code", "", preAuthCodeRequest{
		SuiteKey: b.config.Suite.Key,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAuthInfo fetches the authorization scope an organization granted
// to the suite.
func (b *Broker) GetAuthInfo(ctx context.Context, authCorpID, permanentCode string) (*AuthInfo, error) {
	var out AuthInfo
	err := b.authorizedPost(ctx, "get_auth_info", "/get_auth_info", authCorpID, authInfoRequest{
		SuiteKey:      b.config.Suite.Key,
		AuthCorpID:    authCorpID,
		PermanentCode: permanentCode,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivateSuite marks the suite active for an authorized organization.
func (b *Broker) ActivateSuite(ctx context.Context, authCorpID, permanentCode string) (*Result, error) {
	var out Result
	err := b.authorizedPost(ctx, "activate_suite", "/activate_suite", authCorpID, activateSuiteRequest{
		SuiteKey:      b.config.Suite.Key,
		AuthCorpID:    authCorpID,
		PermanentCode: permanentCode,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
