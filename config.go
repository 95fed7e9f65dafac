package plumelib

const (
	NODATA           = -9999 // 科学产品无效值
	QUICKLOOK_NODATA = 0     // 快视图各波段无效值
	QUICKLOOK_MAX    = 1500  // 快视图显示范围上限（ppm m）
	QUICKLOOK_BANDS  = 3

	UNITS_PPMM      = "ppm m"
	SCENE_PREFIX    = "EMIT_L2B_CH4ENH"
	DATE_CREATED_TF = "2006-01-02T15:04:05Z"
)
