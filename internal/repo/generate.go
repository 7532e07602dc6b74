package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --package github.com/Alijeyrad/psyassist_backend/internal/repo ../schema
