package goSuite

import (
	"net/url"
)

// InstallURL builds the browser-facing authorization URL for one
// install attempt: the suite key, the pre-auth code, the redirect URI,
// and a signed state token that [Broker.VerifyInstallState] can check
// when the callback returns. Requires InstallState to be enabled.
func (b *Broker) InstallURL(preAuthCode, redirectURI string) (string, error) {
	if b == nil {
		return "", ErrBrokerNotReady
	}
	if b.state == nil {
		return "", ErrInstallStateDisabled
	}

	stateToken, err := b.state.Issue()
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("suite_id", b.config.Suite.Key)
	query.Set("pre_auth_code", preAuthCode)
	query.Set("redirect_uri", redirectURI)
	query.Set("state", stateToken)

	return b.config.Remote.InstallBaseURL + "?" + query.Encode(), nil
}

// VerifyInstallState checks the signature and expiry of a state token
// round-tripped through the install redirect. A nil error means the
// callback belongs to a redirect this broker issued within the
// configured TTL.
func (b *Broker) VerifyInstallState(stateToken string) error {
	if b == nil {
		return ErrBrokerNotReady
	}
	if b.state == nil {
		return ErrInstallStateDisabled
	}

	_, err := b.state.Verify(stateToken)
	return err
}
