package sqlite

// Column names of the activities table.
const (
	tableActivities = "activities"

	colID       = "id"
	colName     = "nombre"
	colDuration = "duracion"
	colCalories = "calorias_quemadas"
)

// createActivities is safe to run on every open.
const createActivities = `CREATE TABLE IF NOT EXISTS activities (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nombre TEXT NOT NULL,
    tipo TEXT NOT NULL,
    duracion INTEGER NOT NULL,
    calorias_quemadas REAL NOT NULL
);`

// selectActivities lists columns in the order hydrateRecord scans them.
const selectActivities = "SELECT id, nombre, tipo, duracion, calorias_quemadas FROM activities"
