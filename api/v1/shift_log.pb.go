// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: api/v1/shift_log.proto

package v1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// SpoutMeasurement carries the raw sample text for one spout. Samples
// are transmitted as entered; empty or non-numeric values are allowed.
type SpoutMeasurement struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Samples       []string               `protobuf:"bytes,1,rep,name=samples,proto3" json:"samples,omitempty"`
	Comment       string                 `protobuf:"bytes,2,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpoutMeasurement) Reset() {
	*x = SpoutMeasurement{}
	mi := &file_api_v1_shift_log_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpoutMeasurement) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpoutMeasurement) ProtoMessage() {}

func (x *SpoutMeasurement) ProtoReflect() protoreflect.Message {
	mi := &file_api_v1_shift_log_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpoutMeasurement.ProtoReflect.Descriptor instead.
func (*SpoutMeasurement) Descriptor() ([]byte, []int) {
	return file_api_v1_shift_log_proto_rawDescGZIP(), []int{0}
}

func (x *SpoutMeasurement) GetSamples() []string {
	if x != nil {
		return x.Samples
	}
	return nil
}

func (x *SpoutMeasurement) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type ShiftRecord struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	OperatorName    string                 `protobuf:"bytes,1,opt,name=operator_name,json=operatorName,proto3" json:"operator_name,omitempty"`
	Shift           string                 `protobuf:"bytes,2,opt,name=shift,proto3" json:"shift,omitempty"` // Morning | Afternoon | Night
	Date            string                 `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"`
	Time            string                 `protobuf:"bytes,4,opt,name=time,proto3" json:"time,omitempty"`
	Spouts          []*SpoutMeasurement    `protobuf:"bytes,5,rep,name=spouts,proto3" json:"spouts,omitempty"`
	GeneralComments string                 `protobuf:"bytes,6,opt,name=general_comments,json=generalComments,proto3" json:"general_comments,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ShiftRecord) Reset() {
	*x = ShiftRecord{}
	mi := &file_api_v1_shift_log_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShiftRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShiftRecord) ProtoMessage() {}

func (x *ShiftRecord) ProtoReflect() protoreflect.Message {
	mi := &file_api_v1_shift_log_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShiftRecord.ProtoReflect.Descriptor instead.
func (*ShiftRecord) Descriptor() ([]byte, []int) {
	return file_api_v1_shift_log_proto_rawDescGZIP(), []int{1}
}

func (x *ShiftRecord) GetOperatorName() string {
	if x != nil {
		return x.OperatorName
	}
	return ""
}

func (x *ShiftRecord) GetShift() string {
	if x != nil {
		return x.Shift
	}
	return ""
}

func (x *ShiftRecord) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *ShiftRecord) GetTime() string {
	if x != nil {
		return x.Time
	}
	return ""
}

func (x *ShiftRecord) GetSpouts() []*SpoutMeasurement {
	if x != nil {
		return x.Spouts
	}
	return nil
}

func (x *ShiftRecord) GetGeneralComments() string {
	if x != nil {
		return x.GeneralComments
	}
	return ""
}

type SubmitShiftRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *ShiftRecord           `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitShiftRequest) Reset() {
	*x = SubmitShiftRequest{}
	mi := &file_api_v1_shift_log_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitShiftRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitShiftRequest) ProtoMessage() {}

func (x *SubmitShiftRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_v1_shift_log_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitShiftRequest.ProtoReflect.Descriptor instead.
func (*SubmitShiftRequest) Descriptor() ([]byte, []int) {
	return file_api_v1_shift_log_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitShiftRequest) GetRecord() *ShiftRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type SubmitShiftResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RowsAppended  int64                  `protobuf:"varint,1,opt,name=rows_appended,json=rowsAppended,proto3" json:"rows_appended,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitShiftResponse) Reset() {
	*x = SubmitShiftResponse{}
	mi := &file_api_v1_shift_log_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitShiftResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitShiftResponse) ProtoMessage() {}

func (x *SubmitShiftResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_v1_shift_log_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitShiftResponse.ProtoReflect.Descriptor instead.
func (*SubmitShiftResponse) Descriptor() ([]byte, []int) {
	return file_api_v1_shift_log_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitShiftResponse) GetRowsAppended() int64 {
	if x != nil {
		return x.RowsAppended
	}
	return 0
}

type ComputeSpoutStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Samples       []string               `protobuf:"bytes,1,rep,name=samples,proto3" json:"samples,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ComputeSpoutStatsRequest) Reset() {
	*x = ComputeSpoutStatsRequest{}
	mi := &file_api_v1_shift_log_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ComputeSpoutStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComputeSpoutStatsRequest) ProtoMessage() {}

func (x *ComputeSpoutStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_v1_shift_log_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComputeSpoutStatsRequest.ProtoReflect.Descriptor instead.
func (*ComputeSpoutStatsRequest) Descriptor() ([]byte, []int) {
	return file_api_v1_shift_log_proto_rawDescGZIP(), []int{4}
}

func (x *ComputeSpoutStatsRequest) GetSamples() []string {
	if x != nil {
		return x.Samples
	}
	return nil
}

type ComputeSpoutStatsResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Average           float64                `protobuf:"fixed64,1,opt,name=average,proto3" json:"average,omitempty"`
	StandardDeviation float64                `protobuf:"fixed64,2,opt,name=standard_deviation,json=standardDeviation,proto3" json:"standard_deviation,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ComputeSpoutStatsResponse) Reset() {
	*x = ComputeSpoutStatsResponse{}
	mi := &file_api_v1_shift_log_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ComputeSpoutStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComputeSpoutStatsResponse) ProtoMessage() {}

func (x *ComputeSpoutStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_v1_shift_log_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComputeSpoutStatsResponse.ProtoReflect.Descriptor instead.
func (*ComputeSpoutStatsResponse) Descriptor() ([]byte, []int) {
	return file_api_v1_shift_log_proto_rawDescGZIP(), []int{5}
}

func (x *ComputeSpoutStatsResponse) GetAverage() float64 {
	if x != nil {
		return x.Average
	}
	return 0
}

func (x *ComputeSpoutStatsResponse) GetStandardDeviation() float64 {
	if x != nil {
		return x.StandardDeviation
	}
	return 0
}

type GetOutOfSpecSpoutsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Record        *ShiftRecord           `protobuf:"bytes,1,opt,name=record,proto3" json:"record,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOutOfSpecSpoutsRequest) Reset() {
	*x = GetOutOfSpecSpoutsRequest{}
	mi := &file_api_v1_shift_log_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOutOfSpecSpoutsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOutOfSpecSpoutsRequest) ProtoMessage() {}

func (x *GetOutOfSpecSpoutsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_v1_shift_log_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOutOfSpecSpoutsRequest.ProtoReflect.Descriptor instead.
func (*GetOutOfSpecSpoutsRequest) Descriptor() ([]byte, []int) {
	return file_api_v1_shift_log_proto_rawDescGZIP(), []int{6}
}

func (x *GetOutOfSpecSpoutsRequest) GetRecord() *ShiftRecord {
	if x != nil {
		return x.Record
	}
	return nil
}

type GetOutOfSpecSpoutsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SpoutNumbers  []int32                `protobuf:"varint,1,rep,packed,name=spout_numbers,json=spoutNumbers,proto3" json:"spout_numbers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOutOfSpecSpoutsResponse) Reset() {
	*x = GetOutOfSpecSpoutsResponse{}
	mi := &file_api_v1_shift_log_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOutOfSpecSpoutsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOutOfSpecSpoutsResponse) ProtoMessage() {}

func (x *GetOutOfSpecSpoutsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_v1_shift_log_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOutOfSpecSpoutsResponse.ProtoReflect.Descriptor instead.
func (*GetOutOfSpecSpoutsResponse) Descriptor() ([]byte, []int) {
	return file_api_v1_shift_log_proto_rawDescGZIP(), []int{7}
}

func (x *GetOutOfSpecSpoutsResponse) GetSpoutNumbers() []int32 {
	if x != nil {
		return x.SpoutNumbers
	}
	return nil
}

type GetWorkbookStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetWorkbookStatusRequest) Reset() {
	*x = GetWorkbookStatusRequest{}
	mi := &file_api_v1_shift_log_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWorkbookStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWorkbookStatusRequest) ProtoMessage() {}

func (x *GetWorkbookStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_v1_shift_log_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetWorkbookStatusRequest.ProtoReflect.Descriptor instead.
func (*GetWorkbookStatusRequest) Descriptor() ([]byte, []int) {
	return file_api_v1_shift_log_proto_rawDescGZIP(), []int{8}
}

type GetWorkbookStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RowCount      int64                  `protobuf:"varint,1,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	WorkbookPath  string                 `protobuf:"bytes,2,opt,name=workbook_path,json=workbookPath,proto3" json:"workbook_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetWorkbookStatusResponse) Reset() {
	*x = GetWorkbookStatusResponse{}
	mi := &file_api_v1_shift_log_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWorkbookStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWorkbookStatusResponse) ProtoMessage() {}

func (x *GetWorkbookStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_v1_shift_log_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetWorkbookStatusResponse.ProtoReflect.Descriptor instead.
func (*GetWorkbookStatusResponse) Descriptor() ([]byte, []int) {
	return file_api_v1_shift_log_proto_rawDescGZIP(), []int{9}
}

func (x *GetWorkbookStatusResponse) GetRowCount() int64 {
	if x != nil {
		return x.RowCount
	}
	return 0
}

func (x *GetWorkbookStatusResponse) GetWorkbookPath() string {
	if x != nil {
		return x.WorkbookPath
	}
	return ""
}

var File_api_v1_shift_log_proto protoreflect.FileDescriptor

var file_api_v1_shift_log_proto_rawDesc = string([]byte{
	0x0a, 0x16, 0x61, 0x70, 0x69, 0x2f, 0x76, 0x31, 0x2f, 0x73, 0x68, 0x69, 0x66, 0x74, 0x5f, 0x6c,
	0x6f, 0x67, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x0b, 0x73, 0x68, 0x69, 0x66, 0x74, 0x6c,
	0x6f, 0x67, 0x2e, 0x76, 0x31, 0x22, 0x46, 0x0a, 0x10, 0x53, 0x70, 0x6f, 0x75, 0x74, 0x4d, 0x65,
	0x61, 0x73, 0x75, 0x72, 0x65, 0x6d, 0x65, 0x6e, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x61, 0x6d,
	0x70, 0x6c, 0x65, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x09, 0x52, 0x07, 0x73, 0x61, 0x6d, 0x70,
	0x6c, 0x65, 0x73, 0x12, 0x18, 0x0a, 0x07, 0x63, 0x6f, 0x6d, 0x6d, 0x65, 0x6e, 0x74, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x63, 0x6f, 0x6d, 0x6d, 0x65, 0x6e, 0x74, 0x22, 0xd2, 0x01,
	0x0a, 0x0b, 0x53, 0x68, 0x69, 0x66, 0x74, 0x52, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x12, 0x23, 0x0a,
	0x0d, 0x6f, 0x70, 0x65, 0x72, 0x61, 0x74, 0x6f, 0x72, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x6f, 0x70, 0x65, 0x72, 0x61, 0x74, 0x6f, 0x72, 0x4e, 0x61,
	0x6d, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x73, 0x68, 0x69, 0x66, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x05, 0x73, 0x68, 0x69, 0x66, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x64, 0x61, 0x74, 0x65,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x64, 0x61, 0x74, 0x65, 0x12, 0x12, 0x0a, 0x04,
	0x74, 0x69, 0x6d, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x74, 0x69, 0x6d, 0x65,
	0x12, 0x35, 0x0a, 0x06, 0x73, 0x70, 0x6f, 0x75, 0x74, 0x73, 0x18, 0x05, 0x20, 0x03, 0x28, 0x0b,
	0x32, 0x1d, 0x2e, 0x73, 0x68, 0x69, 0x66, 0x74, 0x6c, 0x6f, 0x67, 0x2e, 0x76, 0x31, 0x2e, 0x53,
	0x70, 0x6f, 0x75, 0x74, 0x4d, 0x65, 0x61, 0x73, 0x75, 0x72, 0x65, 0x6d, 0x65, 0x6e, 0x74, 0x52,
	0x06, 0x73, 0x70, 0x6f, 0x75, 0x74, 0x73, 0x12, 0x29, 0x0a, 0x10, 0x67, 0x65, 0x6e, 0x65, 0x72,
	0x61, 0x6c, 0x5f, 0x63, 0x6f, 0x6d, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x18, 0x06, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0f, 0x67, 0x65, 0x6e, 0x65, 0x72, 0x61, 0x6c, 0x43, 0x6f, 0x6d, 0x6d, 0x65, 0x6e,
	0x74, 0x73, 0x22, 0x46, 0x0a, 0x12, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x53, 0x68, 0x69, 0x66,
	0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x30, 0x0a, 0x06, 0x72, 0x65, 0x63, 0x6f,
	0x72, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x18, 0x2e, 0x73, 0x68, 0x69, 0x66, 0x74,
	0x6c, 0x6f, 0x67, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x68, 0x69, 0x66, 0x74, 0x52, 0x65, 0x63, 0x6f,
	0x72, 0x64, 0x52, 0x06, 0x72, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x22, 0x3a, 0x0a, 0x13, 0x53, 0x75,
	0x62, 0x6d, 0x69, 0x74, 0x53, 0x68, 0x69, 0x66, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x23, 0x0a, 0x0d, 0x72, 0x6f, 0x77, 0x73, 0x5f, 0x61, 0x70, 0x70, 0x65, 0x6e, 0x64,
	0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x72, 0x6f, 0x77, 0x73, 0x41, 0x70,
	0x70, 0x65, 0x6e, 0x64, 0x65, 0x64, 0x22, 0x34, 0x0a, 0x18, 0x43, 0x6f, 0x6d, 0x70, 0x75, 0x74,
	0x65, 0x53, 0x70, 0x6f, 0x75, 0x74, 0x53, 0x74, 0x61, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x73, 0x18, 0x01, 0x20,
	0x03, 0x28, 0x09, 0x52, 0x07, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x73, 0x22, 0x64, 0x0a, 0x19,
	0x43, 0x6f, 0x6d, 0x70, 0x75, 0x74, 0x65, 0x53, 0x70, 0x6f, 0x75, 0x74, 0x53, 0x74, 0x61, 0x74,
	0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x61, 0x76, 0x65,
	0x72, 0x61, 0x67, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x01, 0x52, 0x07, 0x61, 0x76, 0x65, 0x72,
	0x61, 0x67, 0x65, 0x12, 0x2d, 0x0a, 0x12, 0x73, 0x74, 0x61, 0x6e, 0x64, 0x61, 0x72, 0x64, 0x5f,
	0x64, 0x65, 0x76, 0x69, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52,
	0x11, 0x73, 0x74, 0x61, 0x6e, 0x64, 0x61, 0x72, 0x64, 0x44, 0x65, 0x76, 0x69, 0x61, 0x74, 0x69,
	0x6f, 0x6e, 0x22, 0x4d, 0x0a, 0x19, 0x47, 0x65, 0x74, 0x4f, 0x75, 0x74, 0x4f, 0x66, 0x53, 0x70,
	0x65, 0x63, 0x53, 0x70, 0x6f, 0x75, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x30, 0x0a, 0x06, 0x72, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x18, 0x2e, 0x73, 0x68, 0x69, 0x66, 0x74, 0x6c, 0x6f, 0x67, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x68,
	0x69, 0x66, 0x74, 0x52, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x52, 0x06, 0x72, 0x65, 0x63, 0x6f, 0x72,
	0x64, 0x22, 0x41, 0x0a, 0x1a, 0x47, 0x65, 0x74, 0x4f, 0x75, 0x74, 0x4f, 0x66, 0x53, 0x70, 0x65,
	0x63, 0x53, 0x70, 0x6f, 0x75, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x23, 0x0a, 0x0d, 0x73, 0x70, 0x6f, 0x75, 0x74, 0x5f, 0x6e, 0x75, 0x6d, 0x62, 0x65, 0x72, 0x73,
	0x18, 0x01, 0x20, 0x03, 0x28, 0x05, 0x52, 0x0c, 0x73, 0x70, 0x6f, 0x75, 0x74, 0x4e, 0x75, 0x6d,
	0x62, 0x65, 0x72, 0x73, 0x22, 0x1a, 0x0a, 0x18, 0x47, 0x65, 0x74, 0x57, 0x6f, 0x72, 0x6b, 0x62,
	0x6f, 0x6f, 0x6b, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x22, 0x5d, 0x0a, 0x19, 0x47, 0x65, 0x74, 0x57, 0x6f, 0x72, 0x6b, 0x62, 0x6f, 0x6f, 0x6b, 0x53,
	0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1b, 0x0a,
	0x09, 0x72, 0x6f, 0x77, 0x5f, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x08, 0x72, 0x6f, 0x77, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x23, 0x0a, 0x0d, 0x77, 0x6f,
	0x72, 0x6b, 0x62, 0x6f, 0x6f, 0x6b, 0x5f, 0x70, 0x61, 0x74, 0x68, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x0c, 0x77, 0x6f, 0x72, 0x6b, 0x62, 0x6f, 0x6f, 0x6b, 0x50, 0x61, 0x74, 0x68, 0x32,
	0x8b, 0x03, 0x0a, 0x08, 0x53, 0x68, 0x69, 0x66, 0x74, 0x4c, 0x6f, 0x67, 0x12, 0x50, 0x0a, 0x0b,
	0x53, 0x75, 0x62, 0x6d, 0x69, 0x74, 0x53, 0x68, 0x69, 0x66, 0x74, 0x12, 0x1f, 0x2e, 0x73, 0x68,
	0x69, 0x66, 0x74, 0x6c, 0x6f, 0x67, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69, 0x74,
	0x53, 0x68, 0x69, 0x66, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e, 0x73,
	0x68, 0x69, 0x66, 0x74, 0x6c, 0x6f, 0x67, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x6d, 0x69,
	0x74, 0x53, 0x68, 0x69, 0x66, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x62,
	0x0a, 0x11, 0x43, 0x6f, 0x6d, 0x70, 0x75, 0x74, 0x65, 0x53, 0x70, 0x6f, 0x75, 0x74, 0x53, 0x74,
	0x61, 0x74, 0x73, 0x12, 0x25, 0x2e, 0x73, 0x68, 0x69, 0x66, 0x74, 0x6c, 0x6f, 0x67, 0x2e, 0x76,
	0x31, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x75, 0x74, 0x65, 0x53, 0x70, 0x6f, 0x75, 0x74, 0x53, 0x74,
	0x61, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x26, 0x2e, 0x73, 0x68, 0x69,
	0x66, 0x74, 0x6c, 0x6f, 0x67, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x75, 0x74, 0x65,
	0x53, 0x70, 0x6f, 0x75, 0x74, 0x53, 0x74, 0x61, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x65, 0x0a, 0x12, 0x47, 0x65, 0x74, 0x4f, 0x75, 0x74, 0x4f, 0x66, 0x53, 0x70,
	0x65, 0x63, 0x53, 0x70, 0x6f, 0x75, 0x74, 0x73, 0x12, 0x26, 0x2e, 0x73, 0x68, 0x69, 0x66, 0x74,
	0x6c, 0x6f, 0x67, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x4f, 0x75, 0x74, 0x4f, 0x66, 0x53,
	0x70, 0x65, 0x63, 0x53, 0x70, 0x6f, 0x75, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x27, 0x2e, 0x73, 0x68, 0x69, 0x66, 0x74, 0x6c, 0x6f, 0x67, 0x2e, 0x76, 0x31, 0x2e, 0x47,
	0x65, 0x74, 0x4f, 0x75, 0x74, 0x4f, 0x66, 0x53, 0x70, 0x65, 0x63, 0x53, 0x70, 0x6f, 0x75, 0x74,
	0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x62, 0x0a, 0x11, 0x47, 0x65, 0x74,
	0x57, 0x6f, 0x72, 0x6b, 0x62, 0x6f, 0x6f, 0x6b, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x25,
	0x2e, 0x73, 0x68, 0x69, 0x66, 0x74, 0x6c, 0x6f, 0x67, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74,
	0x57, 0x6f, 0x72, 0x6b, 0x62, 0x6f, 0x6f, 0x6b, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x26, 0x2e, 0x73, 0x68, 0x69, 0x66, 0x74, 0x6c, 0x6f, 0x67,
	0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x57, 0x6f, 0x72, 0x6b, 0x62, 0x6f, 0x6f, 0x6b, 0x53,
	0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x2c, 0x5a,
	0x2a, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x67, 0x6f, 0x64, 0x69,
	0x6c, 0x69, 0x74, 0x65, 0x2f, 0x73, 0x68, 0x69, 0x66, 0x74, 0x6c, 0x6f, 0x67, 0x2d, 0x73, 0x65,
	0x72, 0x76, 0x65, 0x72, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x76, 0x31, 0x62, 0x06, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x33,
})

var (
	file_api_v1_shift_log_proto_rawDescOnce sync.Once
	file_api_v1_shift_log_proto_rawDescData []byte
)

func file_api_v1_shift_log_proto_rawDescGZIP() []byte {
	file_api_v1_shift_log_proto_rawDescOnce.Do(func() {
		file_api_v1_shift_log_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_api_v1_shift_log_proto_rawDesc), len(file_api_v1_shift_log_proto_rawDesc)))
	})
	return file_api_v1_shift_log_proto_rawDescData
}

var file_api_v1_shift_log_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_api_v1_shift_log_proto_goTypes = []any{
	(*SpoutMeasurement)(nil),           // 0: shiftlog.v1.SpoutMeasurement
	(*ShiftRecord)(nil),                // 1: shiftlog.v1.ShiftRecord
	(*SubmitShiftRequest)(nil),         // 2: shiftlog.v1.SubmitShiftRequest
	(*SubmitShiftResponse)(nil),        // 3: shiftlog.v1.SubmitShiftResponse
	(*ComputeSpoutStatsRequest)(nil),   // 4: shiftlog.v1.ComputeSpoutStatsRequest
	(*ComputeSpoutStatsResponse)(nil),  // 5: shiftlog.v1.ComputeSpoutStatsResponse
	(*GetOutOfSpecSpoutsRequest)(nil),  // 6: shiftlog.v1.GetOutOfSpecSpoutsRequest
	(*GetOutOfSpecSpoutsResponse)(nil), // 7: shiftlog.v1.GetOutOfSpecSpoutsResponse
	(*GetWorkbookStatusRequest)(nil),   // 8: shiftlog.v1.GetWorkbookStatusRequest
	(*GetWorkbookStatusResponse)(nil),  // 9: shiftlog.v1.GetWorkbookStatusResponse
}
var file_api_v1_shift_log_proto_depIdxs = []int32{
	0, // 0: shiftlog.v1.ShiftRecord.spouts:type_name -> shiftlog.v1.SpoutMeasurement
	1, // 1: shiftlog.v1.SubmitShiftRequest.record:type_name -> shiftlog.v1.ShiftRecord
	1, // 2: shiftlog.v1.GetOutOfSpecSpoutsRequest.record:type_name -> shiftlog.v1.ShiftRecord
	2, // 3: shiftlog.v1.ShiftLog.SubmitShift:input_type -> shiftlog.v1.SubmitShiftRequest
	4, // 4: shiftlog.v1.ShiftLog.ComputeSpoutStats:input_type -> shiftlog.v1.ComputeSpoutStatsRequest
	6, // 5: shiftlog.v1.ShiftLog.GetOutOfSpecSpouts:input_type -> shiftlog.v1.GetOutOfSpecSpoutsRequest
	8, // 6: shiftlog.v1.ShiftLog.GetWorkbookStatus:input_type -> shiftlog.v1.GetWorkbookStatusRequest
	3, // 7: shiftlog.v1.ShiftLog.SubmitShift:output_type -> shiftlog.v1.SubmitShiftResponse
	5, // 8: shiftlog.v1.ShiftLog.ComputeSpoutStats:output_type -> shiftlog.v1.ComputeSpoutStatsResponse
	7, // 9: shiftlog.v1.ShiftLog.GetOutOfSpecSpouts:output_type -> shiftlog.v1.GetOutOfSpecSpoutsResponse
	9, // 10: shiftlog.v1.ShiftLog.GetWorkbookStatus:output_type -> shiftlog.v1.GetWorkbookStatusResponse
	7, // [7:11] is the sub-list for method output_type
	3, // [3:7] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_api_v1_shift_log_proto_init() }
func file_api_v1_shift_log_proto_init() {
	if File_api_v1_shift_log_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_api_v1_shift_log_proto_rawDesc), len(file_api_v1_shift_log_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_api_v1_shift_log_proto_goTypes,
		DependencyIndexes: file_api_v1_shift_log_proto_depIdxs,
		MessageInfos:      file_api_v1_shift_log_proto_msgTypes,
	}.Build()
	File_api_v1_shift_log_proto = out.File
	file_api_v1_shift_log_proto_goTypes = nil
	file_api_v1_shift_log_proto_depIdxs = nil
}
