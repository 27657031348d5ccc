package entity

type Shop struct {
	BaseSimple
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Phone       *string `db:"phone"`
	Website     *string `db:"website"`
}
