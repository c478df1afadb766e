package rate_limiter

import "marketplace/pkg/logger"

// Limiter лимит на ключ клиента (IP).
type Limiter interface {
	Allow(key string) bool
}

// sizer опционален, если лимитер умеет считать ведра, число уходит в метрику.
type sizer interface {
	Len() int
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
