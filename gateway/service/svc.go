package service

import (
	"github.com/loggateway/api/config"
	"github.com/loggateway/api/gateway/domain"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type Params struct {
	fx.In
	Store            domain.Store
	BulkDeleteConfig config.BulkDeleteConfig
}

func NewService(params Params) (domain.Service, error) {
	if params.Store == nil {
		return nil, errors.New("log store is nil")
	}
	bulk := params.BulkDeleteConfig
	if bulk.Concurrency < 1 {
		bulk.Concurrency = 1
	}
	if bulk.PageSize < 1 {
		bulk.PageSize = domain.DefaultPageSize
	}
	svc := &Service{
		Store:      params.Store,
		bulkDelete: bulk,
	}
	return svc, nil
}

type Service struct {
	Store      domain.Store
	bulkDelete config.BulkDeleteConfig
}
