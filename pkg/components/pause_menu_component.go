package components

import "github.com/decker502/planewar/pkg/ecs"

// PauseMenuComponent 暂停遮罩状态组件
// 记录暂停/继续按钮、遮罩和提示文本的实体ID
type PauseMenuComponent struct {
	IsActive     bool         // 暂停遮罩是否显示
	PauseButton  ecs.EntityID // 右下角"暂停"按钮
	ResumeButton ecs.EntityID // 屏幕中央"继续"按钮
	Overlay      ecs.EntityID // 半透明遮罩
	Label        ecs.EntityID // "PAUSED" 文本，可为 InvalidEntity
}
