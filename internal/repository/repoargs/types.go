package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	CardRepoName        RepositoryName = "card"
	TransactionRepoName RepositoryName = "transaction"
	IdempotencyRepoName RepositoryName = "idempotency"
)
