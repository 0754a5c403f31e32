// Package travis предоставляет клиент для Travis CI v3 REST API.
//
// Клиент создаётся через New (публичный api.travis-ci.org) или Pro
// (приватный api.travis-ci.com) с одним из вариантов Credential:
//
//	client, err := travis.New(ctx, travis.Github(os.Getenv("GH_TOKEN")), http.DefaultClient)
//	if err != nil {
//	    return err
//	}
//	build, err := client.GetBuild(ctx, 123)
//
// При Credential Github конструктор выполняет обмен GitHub токена на
// Travis access token (POST /auth/github), поэтому New и Pro принимают
// context и могут вернуть ошибку.
//
// Все типизированные операции построены на единственном примитиве Execute.
// Клиент не кэширует ответы и не повторяет запросы: при RateLimited
// решение о повторе принимает вызывающий код (см. Error.RetryAfterDuration).
//
// Client не содержит изменяемого состояния после создания и безопасен
// для конкурентного использования из нескольких горутин.
package travis
