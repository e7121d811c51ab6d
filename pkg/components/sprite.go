package components

// SpriteComponent 标记实体为图片精灵
// 只记录图片引用和原始尺寸，具体纹理由各前端按引用自行缓存
type SpriteComponent struct {
	ImageRef    string // 资源 ID 或路径，例如 IMAGE_PLANE
	ImageWidth  int    // 原始图片宽度(像素)
	ImageHeight int    // 原始图片高度(像素)
}
