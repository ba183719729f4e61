package service

import (
	"net/url"
	"strconv"
	"strings"

	"stoik.com/outreach/internal/core/domain"
)

// ParseCallbackQuery reads callback parameters from a query string.
func ParseCallbackQuery(rawQuery string) (domain.CallbackParams, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return domain.CallbackParams{}, err
	}
	return callbackFromValues(values), nil
}

// ParseCallbackFragment reads callback parameters from a URL fragment.
// Some flows deliver the code, or an access token, after '#'.
func ParseCallbackFragment(fragment string) (domain.CallbackParams, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(fragment, "#"))
	if err != nil {
		return domain.CallbackParams{}, err
	}
	return callbackFromValues(values), nil
}

// NormalizeCallback accepts a full callback URL and merges both shapes.
// Query values win over fragment values when both are present.
func NormalizeCallback(rawURL string) (domain.CallbackParams, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return domain.CallbackParams{}, domain.NewError(domain.ErrMissingParameters, "callback url is not parseable", err)
	}

	query, err := ParseCallbackQuery(u.RawQuery)
	if err != nil {
		return domain.CallbackParams{}, domain.NewError(domain.ErrMissingParameters, "callback query is not parseable", err)
	}
	fragment, err := ParseCallbackFragment(u.Fragment)
	if err != nil {
		return domain.CallbackParams{}, domain.NewError(domain.ErrMissingParameters, "callback fragment is not parseable", err)
	}

	return mergeCallback(query, fragment), nil
}

func callbackFromValues(values url.Values) domain.CallbackParams {
	params := domain.CallbackParams{
		Code:             values.Get("code"),
		State:            values.Get("state"),
		Error:            values.Get("error"),
		ErrorDescription: values.Get("error_description"),
		AccessToken:      values.Get("access_token"),
	}
	if raw := values.Get("expires_in"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			params.ExpiresIn = n
		}
	}
	return params
}

func mergeCallback(primary, fallback domain.CallbackParams) domain.CallbackParams {
	pick := func(a, b string) string {
		if a != "" {
			return a
		}
		return b
	}
	merged := domain.CallbackParams{
		Code:             pick(primary.Code, fallback.Code),
		State:            pick(primary.State, fallback.State),
		Error:            pick(primary.Error, fallback.Error),
		ErrorDescription: pick(primary.ErrorDescription, fallback.ErrorDescription),
		AccessToken:      pick(primary.AccessToken, fallback.AccessToken),
		ExpiresIn:        primary.ExpiresIn,
	}
	if merged.ExpiresIn == 0 {
		merged.ExpiresIn = fallback.ExpiresIn
	}
	return merged
}
