package handlers

import (
	_ "crmkit/pkg/models" // imported for swagger documentation
)

// 这个文件作为handlers包的统一入口点
// 处理器按功能域拆分到以下文件：
// - base.go: 基础处理器结构和构造函数
// - errors.go: 错误定义和处理
// - middleware.go: 通用辅助函数
// - health_handlers.go: 健康检查和状态相关API
// - support_handlers.go: 工单系统链接API
// - currency_handlers.go: 货币格式化与解析API
// - country_handlers.go: 国家查询API
// - platform_handlers.go: 客户端平台检测API

// 所有API处理器方法都作为 HandlerService 的方法分布在各个文件中，
// 只读取注入的 state.State，不持有可变状态。
