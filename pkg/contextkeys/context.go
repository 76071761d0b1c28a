package contextkeys

type ContextKey string

const (
	// DBContextKey - ключ, под которым DBMiddleware кладет *gorm.DB
	// (пул соединений или транзакцию теста) в контекст запроса.
	DBContextKey ContextKey = "db"
)
