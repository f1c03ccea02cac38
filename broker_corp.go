package goSuite

import "context"

type corpTokenRequest struct {
	AuthCorpID    string `json:"auth_corpid"`
	PermanentCode string `json:"permanent_code"`
}

type agentRequest struct {
	SuiteKey      string `json:"suite_key"`
	AuthCorpID    string `json:"auth_corpid"`
	PermanentCode string `json:"permanent_code"`
	AgentID       int64  `json:"agentid"`
}

type ipWhitelistRequest struct {
	SuiteKey    string   `json:"suite_key"`
	AuthCorpID  string   `json:"auth_corpid"`
	IPWhitelist []string `json:"ip_whitelist"`
}

// GetCorpToken issues a per-organization access token from the
// organization's permanent code.
func (b *Broker) GetCorpToken(ctx context.Context, authCorpID, permanentCode string) (*CorpToken, error) {
	var out CorpToken
	err := b.authorizedPost(ctx, "get_corp_token", "/get_corp_token", authCorpID, corpTokenRequest{
		AuthCorpID:    authCorpID,
		PermanentCode: permanentCode,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAgent fetches the metadata of one agent installed in an
// authorized organization.
func (b *Broker) GetAgent(ctx context.Context, authCorpID, permanentCode string, agentID int64) (*AgentInfo, error) {
	var out AgentInfo
	err := b.authorizedPost(ctx, "get_agent", "/get_agent", authCorpID, agentRequest{
		SuiteKey:      b.config.Suite.Key,
		AuthCorpID:    authCorpID,
		PermanentCode: permanentCode,
		AgentID:       agentID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SetCorpIPWhitelist replaces the organization's IP allow-list.
func (b *Broker) SetCorpIPWhitelist(ctx context.Context, authCorpID string, ips []string) (*Result, error) {
	var out Result
	err := b.authorizedPost(ctx, "set_corp_ipwhitelist", "/set_corp_ipwhitelist", authCorpID, ipWhitelistRequest{
		SuiteKey:    b.config.Suite.Key,
		AuthCorpID:  authCorpID,
		IPWhitelist: ips,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
