package infra

import "context"

type LogoFetcherInterface interface {
	FetchDataURL(ctx context.Context) (string, error)
	Info(ctx context.Context) LogoInfo
}

var _ LogoFetcherInterface = (*LogoClient)(nil)
