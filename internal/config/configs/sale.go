package configs

// Sale holds the platform identities used by the settlement engine. The
// AdminToken is the shared secret that authenticates the platform
// administrator on the HTTP surface; AdminAddress is the identity it
// resolves to. OwnerAddress receives raised funds on successful campaigns
// and CustodyAccount holds the platform's custodied sale tokens.
type Sale struct {
	AdminToken     string `env:"ADMIN_TOKEN" envDefault:"dev-admin-token"`
	AdminAddress   string `env:"ADMIN_ADDRESS" envDefault:"admin"`
	OwnerAddress   string `env:"OWNER_ADDRESS" envDefault:"owner"`
	CustodyAccount string `env:"CUSTODY_ACCOUNT" envDefault:"platform"`

	// Storage selects the campaign repository backend: "postgres" or
	// "memory". The memory backend is intended for local runs and tests.
	Storage string `env:"STORAGE" envDefault:"postgres"`
}
