package db

const sqliteUsers = `
CREATE TABLE IF NOT EXISTS Users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    age INTEGER,
    gender TEXT NOT NULL DEFAULT 'Other',
    password_hash TEXT NOT NULL
);
`

const sqliteBiometrics = `
CREATE TABLE IF NOT EXISTS Biometrics (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL UNIQUE REFERENCES Users(id) ON DELETE CASCADE,
    height_cm REAL NOT NULL,
    weight_kg REAL NOT NULL,
    goal TEXT NOT NULL DEFAULT 'maintain',
    bmi REAL
);
`

const sqliteFoodItems = `
CREATE TABLE IF NOT EXISTS Food_Items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);
`

// eaten_at is TEXT in the stored layout so ordering is lexicographic and the
// driver hands back the exact string.
const sqliteMealLogs = `
CREATE TABLE IF NOT EXISTS Meal_Logs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES Users(id) ON DELETE CASCADE,
    food_id INTEGER NOT NULL REFERENCES Food_Items(id),
    eaten_at TEXT NOT NULL,
    quantity_g REAL NOT NULL,
    calories REAL
);
`

const sqliteMealLogsIndex = `
CREATE INDEX IF NOT EXISTS idx_meal_logs_user_eaten ON Meal_Logs(user_id, eaten_at DESC);
`

const sqliteSeedFoods = `
INSERT OR IGNORE INTO Food_Items (name) VALUES
    ('Apple'), ('Banana'), ('Brown rice'), ('Chicken breast'),
    ('Eggs'), ('Greek yogurt'), ('Oatmeal'), ('Salmon');
`

const mysqlUsers = `
CREATE TABLE IF NOT EXISTS Users (
    id INT AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL UNIQUE,
    age INT NULL,
    gender VARCHAR(32) NOT NULL DEFAULT 'Other',
    password_hash VARCHAR(255) NOT NULL
) ENGINE=InnoDB;
`

const mysqlBiometrics = `
CREATE TABLE IF NOT EXISTS Biometrics (
    id INT AUTO_INCREMENT PRIMARY KEY,
    user_id INT NOT NULL UNIQUE,
    height_cm DOUBLE NOT NULL,
    weight_kg DOUBLE NOT NULL,
    goal VARCHAR(32) NOT NULL DEFAULT 'maintain',
    bmi DOUBLE NULL,
    FOREIGN KEY (user_id) REFERENCES Users(id) ON DELETE CASCADE
) ENGINE=InnoDB;
`

const mysqlFoodItems = `
CREATE TABLE IF NOT EXISTS Food_Items (
    id INT AUTO_INCREMENT PRIMARY KEY,
    name VARCHAR(255) NOT NULL UNIQUE
) ENGINE=InnoDB;
`

const mysqlMealLogs = `
CREATE TABLE IF NOT EXISTS Meal_Logs (
    id INT AUTO_INCREMENT PRIMARY KEY,
    user_id INT NOT NULL,
    food_id INT NOT NULL,
    eaten_at DATETIME NOT NULL,
    quantity_g DOUBLE NOT NULL,
    calories DOUBLE NULL,
    INDEX idx_meal_logs_user_eaten (user_id, eaten_at),
    FOREIGN KEY (user_id) REFERENCES Users(id) ON DELETE CASCADE,
    FOREIGN KEY (food_id) REFERENCES Food_Items(id)
) ENGINE=InnoDB;
`

const mysqlSeedFoods = `
INSERT IGNORE INTO Food_Items (name) VALUES
    ('Apple'), ('Banana'), ('Brown rice'), ('Chicken breast'),
    ('Eggs'), ('Greek yogurt'), ('Oatmeal'), ('Salmon');
`

var schema = map[Dialect][]string{
	DialectSQLite: {
		sqliteUsers,
		sqliteBiometrics,
		sqliteFoodItems,
		sqliteMealLogs,
		sqliteMealLogsIndex,
		sqliteSeedFoods,
	},
	DialectMySQL: {
		mysqlUsers,
		mysqlBiometrics,
		mysqlFoodItems,
		mysqlMealLogs,
		mysqlSeedFoods,
	},
}
