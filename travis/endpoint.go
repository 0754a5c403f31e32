package travis

import "fmt"

// Tier — вариант развёртывания Travis.
type Tier int

const (
	// TierPublic — travis-ci.org, открытые репозитории.
	TierPublic Tier = iota
	// TierPro — travis-ci.com, приватные репозитории.
	TierPro
)

// Базовые адреса API.
const (
	PublicBaseURL = "https://api.travis-ci.org"
	ProBaseURL    = "https://api.travis-ci.com"
)

// String возвращает имя tier для логов и конфигурации.
func (t Tier) String() string {
	switch t {
	case TierPublic:
		return "public"
	case TierPro:
		return "pro"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ParseTier разбирает строковое имя tier ("public", "pro").
// Пустая строка означает TierPublic.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "", "public", "org":
		return TierPublic, nil
	case "pro", "com":
		return TierPro, nil
	default:
		return TierPublic, fmt.Errorf("travis: неизвестный tier %q", s)
	}
}

// Endpoint — базовый адрес API и tier. Не изменяется после создания клиента.
type Endpoint struct {
	BaseURL string
	Tier    Tier
}

// ResolveEndpoint выбирает Endpoint по tier. Credential на выбор не влияет.
// Неизвестный tier — ошибка программиста, вызывает panic.
func ResolveEndpoint(tier Tier, _ Credential) Endpoint {
	switch tier {
	case TierPublic:
		return Endpoint{BaseURL: PublicBaseURL, Tier: tier}
	case TierPro:
		return Endpoint{BaseURL: ProBaseURL, Tier: tier}
	default:
		panic(fmt.Sprintf("travis: unknown tier %d", int(tier)))
	}
}
