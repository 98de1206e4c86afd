package catfact

//go:generate go run go.uber.org/mock/mockgen -source=./catfact.go -destination=./mocks/catfact_mock.go -package=mocks

import (
	"context"
	"errors"
	"facttodo/config"
	"facttodo/infras/otel"
	"facttodo/shared/constant"
	"facttodo/shared/failure"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	PathRandomFact = "/facts/random"

	fieldText = "text"
)

var (
	errInvalidJSON = errors.New("response body is not valid JSON")
	errMissingText = errors.New(`response body has no string "text" field`)
	errEmptyText   = errors.New(`response "text" field is empty`)
)

// CatFact looks up a single fact. Every call goes upstream; nothing is cached or retried.
type CatFact interface {
	Fetch(ctx context.Context) (string, error)
}

type catFactImpl struct {
	client  *http.Client
	baseURL string
	otel    otel.Otel
}

func New(config *config.Config, otel otel.Otel) CatFact {
	return NewClient(
		&http.Client{Timeout: time.Duration(config.External.CatFact.TimeoutSeconds) * time.Second},
		config.External.CatFact.BaseURL,
		otel,
	)
}

// NewClient builds the adapter over an existing client, e.g. one returned by httptest.Server.Client.
func NewClient(client *http.Client, baseURL string, otel otel.Otel) CatFact {
	return &catFactImpl{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		otel:    otel,
	}
}

func (c *catFactImpl) Fetch(ctx context.Context) (fact string, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".catfact.Fetch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	url := c.baseURL + PathRandomFact
	scope.SetAttribute(constant.OtelURLAttributeKey, url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return constant.Empty, failure.UpstreamError(fmt.Errorf("failed to build request: %w", err))
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	res, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to call cat fact service")

		return constant.Empty, failure.UpstreamError(fmt.Errorf("failed to call cat fact service: %w", err))
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		log.Error().Int("status", res.StatusCode).Str("url", url).Msg("cat fact service returned non-success status")

		return constant.Empty, failure.UpstreamError(fmt.Errorf("cat fact service returned status %d", res.StatusCode))
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return constant.Empty, failure.UpstreamError(fmt.Errorf("failed to read cat fact response: %w", err))
	}

	fact, err = decode(body)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to decode cat fact response")

		return constant.Empty, failure.DecodeError(err)
	}

	return fact, nil
}

func decode(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return constant.Empty, errInvalidJSON
	}

	text := gjson.GetBytes(body, fieldText)
	if text.Type != gjson.String {
		return constant.Empty, errMissingText
	}

	if text.Str == constant.Empty {
		return constant.Empty, errEmptyText
	}

	return text.Str, nil
}
