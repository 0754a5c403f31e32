package travis

import (
	"context"
	"errors"
	"net/http"
)

// authGithubPath — endpoint обмена GitHub токена.
const authGithubPath = "/auth/github"

type exchangeRequest struct {
	GithubToken string `json:"github_token"`
}

type exchangeResponse struct {
	AccessToken string `json:"access_token"`
}

// Exchange обменивает GitHub токен на Travis access token.
// Выполняет ровно один POST {base}/auth/github без повторов.
// При nil transport используется http.DefaultClient.
//
// Ошибки: 401/403 — KindAuth, некорректное тело или пустой access_token —
// KindDecode, сетевой сбой — KindTransport.
func Exchange(ctx context.Context, transport Transport, endpoint Endpoint, githubToken string) (string, error) {
	return exchange(ctx, transport, endpoint, githubToken, DefaultUserAgent)
}

func exchange(ctx context.Context, transport Transport, endpoint Endpoint, githubToken, userAgent string) (string, error) {
	if transport == nil {
		transport = http.DefaultClient
	}
	spec := Post(authGithubPath, exchangeRequest{GithubToken: githubToken})
	req, err := BuildRequest(ctx, spec, endpoint, "", userAgent)
	if err != nil {
		return "", err
	}
	resp, err := transport.Do(req)
	if err != nil {
		return "", newTransportError(req.Method, authGithubPath, err)
	}
	out, err := Decode[exchangeResponse](resp)
	if err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", newDecodeError(resp.StatusCode, nil, errors.New("в ответе отсутствует access_token"))
	}
	return out.AccessToken, nil
}
