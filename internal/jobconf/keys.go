package jobconf

// Job 作用域键（每份配置恰好出现一次）。
const (
	KeyJobLanguage        = "job_language"
	KeyHierarchyType      = "is_hierarchy_type"
	KeyHierarchyPrefix    = "is_hierarchy_prefix"
	KeyTextRelativePath   = "is_text_file_relative_path"
	KeyTextNamePattern    = "is_text_file_name_regex"
	KeyAudioRelativePath  = "is_audio_file_relative_path"
	KeyAudioNamePattern   = "is_audio_file_name_regex"
	KeyTaskDirNamePattern = "is_task_dir_name_regex"
	KeyOutHierarchyType   = "os_job_file_hierarchy_type"
	KeyOutHierarchyPrefix = "os_job_file_hierarchy_prefix"
)

// Task 作用域键（缺失时回退到 Job 作用域）。
const (
	KeyTaskLanguage    = "task_language"
	KeyTaskCustomID    = "task_custom_id"
	KeyTaskTextFile    = "is_text_file"
	KeyTaskAudioFile   = "is_audio_file"
	KeyTaskOutFileName = "os_task_file_name"
	KeyTaskAudioRef    = "os_task_file_smil_audio_ref"
	KeyTaskPageRef     = "os_task_file_smil_page_ref"
)

// PlaceholderToken 是输出路径/引用模板里的任务前缀占位槽。
const PlaceholderToken = "$PREFIX"
