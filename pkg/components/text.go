package components

// TextComponent 标记实体为文本节点
type TextComponent struct {
	Content string
	Color   [4]uint8 // RGBA
}
