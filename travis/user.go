package travis

import "context"

// CurrentUser возвращает пользователя, которому принадлежит токен.
// Для анонимного клиента Travis вернёт KindAuth.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	u, err := Execute[User](ctx, c, Get("/user"))
	if err != nil {
		return nil, err
	}
	return &u, nil
}
