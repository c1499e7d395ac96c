package registry

type IDParam struct {
	ID uint `uri:"id" binding:"required"`
}

type NameQuery struct {
	Name string `form:"name" binding:"required"`
}
