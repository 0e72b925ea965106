package user

const (
	SelectUserByUUID = `
		SELECT uuid, name, last_names, email, secret_hash, phone, address, role, active, created_at, updated_at
		FROM users
		WHERE uuid = $1
	`
	SelectUserByEmail = `
		SELECT uuid, name, last_names, email, secret_hash, phone, address, role, active, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	SelectUserByPhone = `
		SELECT uuid, name, last_names, email, secret_hash, phone, address, role, active, created_at, updated_at
		FROM users
		WHERE phone = $1 AND phone <> ''
	`
	SelectUsersByName = `
		SELECT uuid, name, last_names, email, secret_hash, phone, address, role, active, created_at, updated_at
		FROM users
		WHERE name = $1
	`
	SelectUsersByStatus = `
		SELECT uuid, name, last_names, email, secret_hash, phone, address, role, active, created_at, updated_at
		FROM users
		WHERE active = $1
	`
	SelectUsers = `
		SELECT uuid, name, last_names, email, secret_hash, phone, address, role, active, created_at, updated_at
		FROM users
	`
	InsertUser = `
		INSERT INTO users (name, last_names, email, secret_hash, phone, address, role, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING
		  uuid, name, last_names, email, secret_hash, phone, address, role, active, created_at, updated_at
	`
	UpdateUserByUUID = `
		UPDATE users
		SET name = $1,
		    last_names = $2,
		    email = $3,
		    secret_hash = $4,
		    phone = $5,
		    address = $6,
		    role = $7,
		    active = $8,
		    updated_at = now()
		WHERE uuid = $9
		RETURNING
		  uuid, name, last_names, email, secret_hash, phone, address, role, active, created_at, updated_at
	`
	DeleteUserByUUID = `
		DELETE FROM users
		WHERE uuid = $1
		RETURNING
		  uuid, name, last_names, email, secret_hash, phone, address, role, active, created_at, updated_at
	`
)
