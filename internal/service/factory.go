package service

import (
	"tenantly.app/api-server/core/cache"
	"tenantly.app/api-server/core/config"
	"tenantly.app/api-server/internal/store"
)

type ServicesConfig struct {
	Stores   *store.Stores
	TxRunner TxRunner
	Cache    *cache.Cache
	JWT      config.JWTConfig
}

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	cache    *cache.Cache
	jwtCfg   config.JWTConfig
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		stores:   cfg.Stores,
		txRunner: cfg.TxRunner,
		cache:    cfg.Cache,
		jwtCfg:   cfg.JWT,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.txRunner, s.jwtCfg)
}

func (s *Services) Projects() ProjectService {
	return NewProjectService(s.stores.Projects(), s.cache)
}

func (s *Services) Users() UserService {
	return NewUserService(s.stores.Users())
}
