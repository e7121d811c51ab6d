package components

// TransformComponent 存储舞台节点的可变几何属性
// 对应渲染门面中精灵/文本暴露的 position、size、anchor、alpha 字段
//
// 坐标约定：
//   - (X, Y) 是锚点在舞台坐标系中的位置
//   - AnchorX/AnchorY 取值 0~1，(0,0) 为左上角，(0.5,0.5) 为中心
//   - Alpha 取值 0~1
type TransformComponent struct {
	X, Y             float64
	Width, Height    float64
	AnchorX, AnchorY float64
	Alpha            float64
}

// SetPosition 同时设置 X 和 Y
func (t *TransformComponent) SetPosition(x, y float64) {
	t.X = x
	t.Y = y
}

// SetAnchor 设置锚点
func (t *TransformComponent) SetAnchor(ax, ay float64) {
	t.AnchorX = ax
	t.AnchorY = ay
}

// Bounds 返回节点在舞台坐标系中的左上角和尺寸
func (t *TransformComponent) Bounds() (left, top, width, height float64) {
	left = t.X - t.AnchorX*t.Width
	top = t.Y - t.AnchorY*t.Height
	return left, top, t.Width, t.Height
}

// ToLocal 将舞台坐标转换为节点本地坐标（原点为节点左上角）
func (t *TransformComponent) ToLocal(stageX, stageY float64) (float64, float64) {
	left, top, _, _ := t.Bounds()
	return stageX - left, stageY - top
}

// Contains 判断舞台坐标点是否落在节点矩形内（含边界）
func (t *TransformComponent) Contains(stageX, stageY float64) bool {
	lx, ly := t.ToLocal(stageX, stageY)
	return lx >= 0 && lx <= t.Width && ly >= 0 && ly <= t.Height
}
