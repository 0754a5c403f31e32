package travis

// Credential описывает способ аутентификации клиента.
// Закрытый набор вариантов: NoCredential, GithubToken, APIToken.
// Новые варианты добавляются только внутри пакета.
type Credential interface {
	credential()
}

// NoCredential — анонимный доступ без заголовка Authorization.
type NoCredential struct{}

// GithubToken — персональный GitHub токен. При создании клиента
// обменивается на Travis access token.
type GithubToken struct {
	Token string
}

// APIToken — готовый Travis API токен, используется как есть.
type APIToken struct {
	Token string
}

func (NoCredential) credential() {}
func (GithubToken) credential()  {}
func (APIToken) credential()     {}

// None возвращает Credential для анонимного доступа.
func None() Credential { return NoCredential{} }

// Github возвращает Credential с GitHub токеном.
func Github(token string) Credential { return GithubToken{Token: token} }

// APIKey возвращает Credential с Travis API токеном.
func APIKey(token string) Credential { return APIToken{Token: token} }

// String не раскрывает значение токена.
func (c GithubToken) String() string { return "GithubToken(***)" }

// String не раскрывает значение токена.
func (c APIToken) String() string { return "APIToken(***)" }
