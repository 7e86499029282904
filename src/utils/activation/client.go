package activation

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/warp-contracts/gridclient/src/utils/config"
	"github.com/warp-contracts/gridclient/src/utils/logger"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Client funds freshly created accounts so they can pay for their first transactions
type Client struct {
	log    *logrus.Entry
	config *config.Activation
	client *resty.Client
}

func NewClient(config *config.Activation) (self *Client) {
	self = new(Client)
	self.log = logger.NewSublogger("activation-client")
	self.config = config

	self.client = resty.New().
		SetTimeout(self.config.RequestTimeout).
		SetHeader("User-Agent", "gridclient").
		SetRetryCount(0).
		SetTransport(self.createTransport())
	return
}

func (self *Client) createTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   self.config.DialerTimeout,
		KeepAlive: self.config.DialerKeepAlive,
	}

	return &http.Transport{
		ForceAttemptHTTP2: true,

		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   self.config.TLSHandshakeTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		IdleConnTimeout:       self.config.IdleConnTimeout,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   2,
	}
}

// Activate asks the activation service to fund the account. An already activated account (409) is fine.
func (self *Client) Activate(ctx context.Context, address string) (err error) {
	self.log.WithField("address", address).Debug("Activating account")

	resp, err := self.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"substrateAccountID": address,
		}).
		Post(self.config.Url)
	if err != nil {
		return
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		self.log.WithField("address", address).Info("Account activated")
	case http.StatusConflict:
		self.log.WithField("address", address).Debug("Account already activated")
	default:
		err = fmt.Errorf("%w: status %d: %s", ErrActivationFailed, resp.StatusCode(), resp.String())
	}
	return
}
