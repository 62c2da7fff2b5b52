package exception

import "github.com/m04kA/BookEasy-Service/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
