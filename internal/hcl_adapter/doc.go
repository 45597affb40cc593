// Package hcl_adapter reads controller settings written in HCL.
//
// A settings file is a flat list of attributes:
//
//	data_tool  = "${env.JENA_HOME}/bin/tdbloader2data"
//	index_tool = "${config_dir}/bin/tdbloader2index"
//	jvm_args   = "-Xmx4G"
//	sort_args  = "-T /var/tmp"
//
// Expressions may reference `env` (the process environment) and
// `config_dir` (the directory holding the file being read).
package hcl_adapter
