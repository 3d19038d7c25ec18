package repo

const (
	tableIssuerCredentials = "issuer_credentials"
)

const (
	colKeyID      = "key_id"
	colIdentity   = "identity"
	colPrivateKey = "private_key"
	colStatus     = "status"
	colCreatedAt  = "created_at"
)

const (
	statusActive  = "active"
	statusRetired = "retired"
)
